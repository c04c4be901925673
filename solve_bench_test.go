// solve_bench_test.go -- benchmarks mirroring original_source/benches/
// packx.rs and difficulty.rs: table construction, solve swept across
// difficulty rungs 0, 4 and 8, and verify/unpack at difficulty 0.

package packx

import "testing"

func BenchmarkBuildOneBump(b *testing.B) {
	pk := fixedPubKey()
	var tbl SeedTable
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buildOneBumpInto(DefaultOracle, pk, byte(i), &tbl)
	}
}

func BenchmarkBuildMemory(b *testing.B) {
	pk := fixedPubKey()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buildMemory(DefaultOracle, pk)
	}
}

func BenchmarkSolveDifficulty0(b *testing.B) {
	benchmarkSolveAtDifficulty(b, 0)
}

func BenchmarkSolveDifficulty4(b *testing.B) {
	benchmarkSolveAtDifficulty(b, 4)
}

func BenchmarkSolveDifficulty8(b *testing.B) {
	benchmarkSolveAtDifficulty(b, 8)
}

func benchmarkSolveAtDifficulty(b *testing.B, d int) {
	pk := fixedPubKey()
	mem := BuildMemory(pk)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := randData()
		if _, ok := SolveWithMemory(data, mem, d); !ok {
			b.Fatalf("no solution at difficulty %d", d)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	pk := fixedPubKey()
	data := fixedData()
	sol, ok := Solve(pk, data, 0)
	if !ok {
		b.Fatal("setup solve failed")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Verify(pk, data, sol, 0)
	}
}

func BenchmarkUnpack(b *testing.B) {
	pk := fixedPubKey()
	data := fixedData()
	sol, ok := Solve(pk, data, 0)
	if !ok {
		b.Fatal("setup solve failed")
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Unpack(pk, sol)
	}
}
