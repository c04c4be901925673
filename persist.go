// persist.go -- SaveMemory/LoadMemory persist a SolverMemory to a flat,
// mmap'd file, the direct analogue of the teacher's on-disk constant DB
// (dbwriter.go/dbreader.go): a small header, a page-aligned body, and a
// strong trailer checksum verified before any reader trusts the mapping.
//
// Persisting a SolverMemory lets a long-lived service reuse the ~16.8M hash
// invocations behind one public key's 256 bump tables across process
// restarts, instead of paying BuildMemory's cost again on every boot.

package packx

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/opencoff/go-mmap"
)

const (
	_memMagic      = "PxM1"
	_memHeaderSize = 64
	_memBodySize   = int(unsafe.Sizeof(SolverMemory{}))
	_memChecksum   = sha512.Size256
)

// SaveMemory writes mem to fn as a flat file LoadMemory can later mmap
// back in read-only. The file layout is:
//
//	[0:64)          header: magic(4) version(1) resv(3) pubkey(32) bodylen(8 LE) resv(16)
//	[64:bodyOff)    zero padding up to the next page boundary
//	[bodyOff:+body) raw SolverMemory bytes
//	[...:+32)       SHA512-256 over everything written before it
func SaveMemory(fn string, mem *SolverMemory) (err error) {
	tmp := fmt.Sprintf("%s.tmp.%d", fn, rand32())
	fd, err := os.OpenFile(tmp, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()
	defer fd.Close()

	h := sha512.New512_256()
	tee := io.MultiWriter(fd, h)

	var hdr [_memHeaderSize]byte
	copy(hdr[:4], _memMagic)
	hdr[4] = 1 // version
	copy(hdr[8:40], mem.PubKey[:])
	binary.LittleEndian.PutUint64(hdr[40:48], uint64(_memBodySize))

	if _, err = writeAll(tee, hdr[:]); err != nil {
		return err
	}

	pgsz := int64(os.Getpagesize())
	pad := (pgsz - int64(_memHeaderSize)%pgsz) % pgsz
	if pad > 0 {
		if _, err = writeAll(tee, make([]byte, pad)); err != nil {
			return err
		}
	}

	if _, err = writeAll(tee, memoryBytes(mem)); err != nil {
		return err
	}

	sum := h.Sum(nil)
	if _, err = writeAll(fd, sum); err != nil {
		return err
	}

	if err = fd.Sync(); err != nil {
		return err
	}
	if err = os.Rename(tmp, fn); err != nil {
		return err
	}
	return nil
}

// PersistedMemory is a SolverMemory backed by a read-only memory mapping
// of a file written by SaveMemory. Callers must call Close once done;
// the SolverMemory itself must not be used after Close.
type PersistedMemory struct {
	*SolverMemory
	mm *mmap.Mapping
	fd *os.File
}

// Close unmaps and closes the underlying file.
func (p *PersistedMemory) Close() error {
	if p.mm != nil {
		p.mm.Unmap()
		p.mm = nil
	}
	if p.fd != nil {
		err := p.fd.Close()
		p.fd = nil
		return err
	}
	return nil
}

// LoadMemory opens and verifies a file written by SaveMemory, mapping its
// body read-only rather than copying it into the process heap.
func LoadMemory(fn string) (*PersistedMemory, error) {
	fd, err := os.Open(fn)
	if err != nil {
		return nil, err
	}

	st, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, err
	}

	var hdr [_memHeaderSize]byte
	if _, err := io.ReadFull(fd, hdr[:]); err != nil {
		fd.Close()
		return nil, fmt.Errorf("packx: short header in %s: %w", fn, err)
	}
	if string(hdr[:4]) != _memMagic {
		fd.Close()
		return nil, ErrBadMagic
	}

	bodylen := binary.LittleEndian.Uint64(hdr[40:48])
	if bodylen != uint64(_memBodySize) {
		fd.Close()
		return nil, fmt.Errorf("packx: %s: unexpected body length %d (want %d)", fn, bodylen, _memBodySize)
	}

	pgsz := int64(os.Getpagesize())
	bodyOff := int64(_memHeaderSize) + (pgsz-int64(_memHeaderSize)%pgsz)%pgsz

	want := bodyOff + int64(_memBodySize) + _memChecksum
	if st.Size() != want {
		fd.Close()
		return nil, fmt.Errorf("packx: %s: corrupt file size %d (want %d)", fn, st.Size(), want)
	}

	if err := verifyMemoryChecksum(fd, bodyOff, int64(_memBodySize)); err != nil {
		fd.Close()
		return nil, err
	}

	mm := mmap.New(fd)
	mapping, err := mm.Map(int64(_memBodySize), bodyOff, mmap.PROT_READ, mmap.F_READAHEAD)
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("packx: %s: can't mmap %d bytes at off %d: %w", fn, _memBodySize, bodyOff, err)
	}

	// The body already carries PubKey (it is the first field of the raw
	// SolverMemory bytes), so nothing is written into the read-only mapping.
	mem := memoryFromBytes(mapping.Bytes())

	return &PersistedMemory{SolverMemory: mem, mm: mapping, fd: fd}, nil
}

func verifyMemoryChecksum(fd *os.File, bodyOff, bodyLen int64) error {
	if _, err := fd.Seek(0, io.SeekStart); err != nil {
		return err
	}

	h := sha512.New512_256()
	if _, err := io.CopyN(h, fd, bodyOff+bodyLen); err != nil {
		return err
	}

	var want [_memChecksum]byte
	if _, err := io.ReadFull(fd, want[:]); err != nil {
		return err
	}

	got := h.Sum(nil)
	if subtle.ConstantTimeCompare(got, want[:]) != 1 {
		return ErrChecksum
	}
	return nil
}

// memoryBytes reinterprets mem's fixed-size, padding-free fields (every
// leaf field is a byte or an array of bytes/uint64s with no interior
// padding) as a flat byte slice, for writing to disk without a
// field-by-field marshal loop across 18 MiB.
func memoryBytes(mem *SolverMemory) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(mem)), _memBodySize)
}

// memoryFromBytes is the inverse of memoryBytes: it reinterprets a
// byte slice (expected to be a page-aligned mmap mapping of exactly
// _memBodySize bytes) as a *SolverMemory with no copy.
func memoryFromBytes(b []byte) *SolverMemory {
	if len(b) != _memBodySize {
		panic("packx: memoryFromBytes: bad length")
	}
	return (*SolverMemory)(unsafe.Pointer(&b[0]))
}
