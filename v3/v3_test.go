package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	m, err := NewMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	if err != nil {
		Te.Error(err)
	}
	if m.NVecs() != 3 {
		Te.Errorf("Expected 3 vectors, got %d", m.NVecs())
	}
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	if err == nil {
		Te.Error("Expected an error for a slice not divisible by 3")
	}
}

func TestCrossAndDet(Te *testing.T) {
	a, _ := NewMatrix([]float64{1, 0, 0})
	b, _ := NewMatrix([]float64{0, 1, 0})
	c := Zeros(1)
	c.Cross(a, b)
	if c.At(0, 2) != 1 || c.At(0, 0) != 0 || c.At(0, 1) != 0 {
		Te.Errorf("Wrong cross product: %v", c)
	}
	m, _ := NewMatrix([]float64{1, 0, 0, 2, 3, 0, 1, 2, 3})
	if math.Abs(Det(m)-9.0) > 1e-12 {
		Te.Errorf("Wrong determinant: %f", Det(m))
	}
}

func TestSomeVecs(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3})
	F := Zeros(2)
	F.SomeVecs(A, []int{1, 3})
	if F.At(0, 0) != 1 || F.At(1, 2) != 3 {
		Te.Errorf("SomeVecs picked the wrong vectors: %v", F)
	}
	err := F.SomeVecsSafe(A, []int{1, 5})
	if err == nil {
		Te.Error("Expected an out of range error")
	}
}

func TestVecViewIsView(Te *testing.T) {
	A := Zeros(3)
	v := A.VecView(1)
	v.Set(0, 0, 42.0)
	if A.At(1, 0) != 42.0 {
		Te.Error("VecView does not share memory with the viewed matrix")
	}
}
