package exception_test

import (
	"testing"

	"github.com/jmgilman/go/exception"
)

func BenchmarkCapture(b *testing.B) {
	value := DerivedFailure{Code: 1}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = exception.Capture(value)
	}
}

func BenchmarkTryCatch_Exact(b *testing.B) {
	ex := exception.Capture(DerivedFailure{Code: 1})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = exception.TryCatch[DerivedFailure](ex)
	}
}

// BenchmarkTryCatch_Embedded measures the breadth-first embedded field search.
func BenchmarkTryCatch_Embedded(b *testing.B) {
	ex := exception.Capture(Shadowing{})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = exception.TryCatch[BaseFailure](ex)
	}
}

func BenchmarkTryCatch_Interface(b *testing.B) {
	ex := exception.Capture(BaseFailure{Message: "x"})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = exception.TryCatch[error](ex)
	}
}

func BenchmarkHandle(b *testing.B) {
	ex := exception.Capture(DerivedFailure{Code: 1})
	handlers := []exception.Handler[int]{
		exception.Case(func(*TypeA) int { return 1 }),
		exception.Case(func(*TypeB) int { return 2 }),
		exception.Case(func(*BaseFailure) int { return 3 }),
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = exception.Handle(ex, handlers...)
	}
}
