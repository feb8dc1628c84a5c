package dimension_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/testutil"
	"github.com/arthur-debert/nanounits/types"
)

var (
	mul = dimension.Multiply
	div = dimension.Divide
)

func per(d dimension.Dimension) dimension.Dimension { return dimension.Reciprocal(d) }

func TestKinds(t *testing.T) {
	u := testutil.LoadUniverse(t)
	L, T := u.Length, u.Time

	tests := []struct {
		name string
		dim  dimension.Dimension
		want types.DimensionKind
	}{
		{"base", L, types.Base},
		{"named", u.Frequency, types.Named},
		{"one", dimension.One, types.Derived},
		{"L/L collapses to one", div(L, L), types.Derived},
		{"speed*T collapses to a base", mul(u.Speed, T), types.Base},
		{"anonymous product", mul(L, T), types.Derived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dim.Kind(); got != tt.want {
				t.Errorf("kind of %s: got %s, want %s", tt.dim, got, tt.want)
			}
		})
	}
}

func TestCanonicalForm(t *testing.T) {
	u := testutil.LoadUniverse(t)
	L, T := u.Length, u.Time
	one := dimension.One

	tests := []struct {
		name string
		dim  dimension.Dimension
		want []string
	}{
		{"1/T", per(T), []string{"T^-1"}},
		{"1/(1/T)", per(per(T)), []string{"T"}},
		{"one*T", mul(one, T), []string{"T"}},
		{"T*one", mul(T, one), []string{"T"}},
		{"one*(1/T)", mul(one, per(T)), []string{"T^-1"}},
		{"1/T*one", mul(per(T), one), []string{"T^-1"}},
		{"L*T", mul(L, T), []string{"L", "T"}},
		{"L*L", mul(L, L), []string{"L^2"}},
		{"L*L*T", mul(mul(L, L), T), []string{"L^2", "T"}},
		{"L*T*L", mul(mul(L, T), L), []string{"L^2", "T"}},
		{"L*(T*L)", mul(L, mul(T, L)), []string{"L^2", "T"}},
		{"T*(L*L)", mul(T, mul(L, L)), []string{"L^2", "T"}},
		{"1/T*L", mul(per(T), L), []string{"L", "T^-1"}},
		{"1/T*T", mul(per(T), T), nil},
		{"T/one", div(T, one), []string{"T"}},
		{"1/T/one", div(per(T), one), []string{"T^-1"}},
		{"L/T*T", mul(div(L, T), T), []string{"L"}},
		{"1/T*(1/T)", mul(per(T), per(T)), []string{"T^-2"}},
		{"1/(T*T)", per(mul(T, T)), []string{"T^-2"}},
		{"1/(1/(T*T))", per(per(mul(T, T))), []string{"T^2"}},
		{"L/T*(1/T)", mul(div(L, T), per(T)), []string{"L", "T^-2"}},
		{"L/T*(L/T)", mul(div(L, T), div(L, T)), []string{"L^2", "T^-2"}},
		{"L/T*(T/L)", mul(div(L, T), div(T, L)), nil},
		{"speed/acceleration", div(u.Speed, u.Acceleration), []string{"T"}},
		{"acceleration/speed", div(u.Acceleration, u.Speed), []string{"T^-1"}},
		{"speed*speed/L", div(mul(u.Speed, u.Speed), L), []string{"L", "T^-2"}},
		{"1/(speed*speed)*L", mul(per(mul(u.Speed, u.Speed)), L), []string{"L^-1", "T^2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertTerms(t, tt.dim, tt.want...)
		})
	}

	t.Run("reducible forms collapse", func(t *testing.T) {
		testutil.AssertEqual(t, per(per(T)), T)
		testutil.AssertEqual(t, mul(u.Speed, T), L)
		testutil.AssertEqual(t, mul(per(T), T), one)
		testutil.AssertEqual(t, div(L, L), one)
	})
}

func TestAlgebraProperties(t *testing.T) {
	u := testutil.LoadUniverse(t)
	L, M, T := u.Length, u.Mass, u.Time

	t.Run("self quotient is one", func(t *testing.T) {
		for _, d := range []dimension.Dimension{L, u.Speed, mul(L, T), u.Force} {
			testutil.AssertEqual(t, div(d, d), dimension.One)
		}
	})

	t.Run("multiplication is associative and commutative", func(t *testing.T) {
		a := mul(mul(L, M), T)
		testutil.AssertEqual(t, mul(L, mul(M, T)), a)
		testutil.AssertEqual(t, mul(mul(L, T), M), a)
		testutil.AssertEqual(t, mul(T, mul(M, L)), a)
		testutil.AssertEqual(t, dimension.Product(M, T, L), a)
	})

	t.Run("reciprocal cancels", func(t *testing.T) {
		testutil.AssertEqual(t, mul(per(T), T), dimension.One)
		testutil.AssertEqual(t, div(L, per(T)), mul(L, T))
		testutil.AssertEqual(t, per(per(T)), T)
		testutil.AssertEqual(t, per(dimension.One), dimension.One)
	})

	t.Run("powers", func(t *testing.T) {
		testutil.AssertEqual(t, dimension.Pow(L, 2), mul(L, L))
		testutil.AssertEqual(t, dimension.Square(L), mul(L, L))
		testutil.AssertEqual(t, dimension.Cubic(L), mul(mul(L, L), L))
		testutil.AssertEqual(t, dimension.Pow(L, 0), dimension.One)
		testutil.AssertEqual(t, dimension.Pow(u.Force, 0), dimension.One)
		testutil.AssertEqual(t, dimension.Pow(L, -1), div(dimension.One, L))
		testutil.AssertEqual(t, dimension.Pow(L, 1), L)
		testutil.AssertEqual(t, dimension.Pow(u.Speed, 2), div(mul(L, L), mul(T, T)))
		testutil.AssertEqual(t, dimension.Pow(dimension.Pow(u.Speed, 2), -1), per(mul(u.Speed, u.Speed)))
	})

	t.Run("end to end", func(t *testing.T) {
		testutil.AssertEqual(t, mul(div(L, T), T), L)
		testutil.AssertEqual(t, mul(div(L, T), div(T, L)), dimension.One)
		testutil.AssertEqual(t, div(mul(u.Speed, u.Speed), L), div(L, dimension.Pow(T, 2)))
	})

	t.Run("empty product is one", func(t *testing.T) {
		testutil.AssertEqual(t, dimension.Product(), dimension.One)
	})
}

func TestArithmeticOnNamedDimensions(t *testing.T) {
	u := testutil.LoadUniverse(t)
	L := u.Length

	tests := []struct {
		name string
		dim  dimension.Dimension
		want dimension.Dimension
	}{
		{"area/length", div(u.Area, L), L},
		{"volume/length/length", div(div(u.Volume, L), L), L},
		{"volume/(length*length)", div(u.Volume, mul(L, L)), L},
		{"length/speed", div(L, u.Speed), u.Time},
		{"speed*time", mul(u.Speed, u.Time), L},
		{"acceleration*(time*time)", mul(u.Acceleration, mul(u.Time, u.Time)), L},
		{"1/frequency", per(u.Frequency), u.Time},
		{"frequency*time", mul(u.Frequency, u.Time), dimension.One},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, tt.dim, tt.want)
		})
	}

	t.Run("results are never named", func(t *testing.T) {
		for _, d := range []dimension.Dimension{
			mul(u.Area, L),
			div(u.Volume, L),
			div(u.Acceleration, u.Speed),
			mul(u.Velocity, dimension.One),
			dimension.Pow(u.Speed, 1),
		} {
			if d.Kind() == types.Named {
				t.Errorf("%s: arithmetic produced a named dimension", d)
			}
		}
	})
}

func TestFromTerms(t *testing.T) {
	u := testutil.LoadUniverse(t)
	L, T := u.Length, u.Time

	t.Run("merges repeated bases and drops zeros", func(t *testing.T) {
		d, err := dimension.FromTerms(
			dimension.Term{Base: T, Exp: -1},
			dimension.Term{Base: L, Exp: 1},
			dimension.Term{Base: u.Mass, Exp: 0},
			dimension.Term{Base: T, Exp: -1},
		)
		if err != nil {
			t.Fatalf("FromTerms: %v", err)
		}
		testutil.AssertEqual(t, d, u.Acceleration.Parent())
		testutil.AssertTerms(t, d, "L", "T^-2")
	})

	t.Run("collapses", func(t *testing.T) {
		d, err := dimension.FromTerms(dimension.Term{Base: L, Exp: 2}, dimension.Term{Base: L, Exp: -1})
		if err != nil {
			t.Fatalf("FromTerms: %v", err)
		}
		testutil.AssertEqual(t, d, L)

		empty, err := dimension.FromTerms()
		if err != nil {
			t.Fatalf("FromTerms: %v", err)
		}
		testutil.AssertEqual(t, empty, dimension.One)
	})

	t.Run("nil base", func(t *testing.T) {
		_, err := dimension.FromTerms(dimension.Term{Base: L, Exp: 1}, dimension.Term{Exp: 2})
		if !errors.Is(err, dimension.ErrMalformedTerm) {
			t.Errorf("got %v, want ErrMalformedTerm", err)
		}
	})

	t.Run("input is not aliased", func(t *testing.T) {
		terms := []dimension.Term{{Base: L, Exp: 1}, {Base: T, Exp: -1}}
		d, err := dimension.FromTerms(terms...)
		if err != nil {
			t.Fatalf("FromTerms: %v", err)
		}
		terms[0].Exp = 5
		testutil.AssertTerms(t, d, "L", "T^-1")

		out := d.Terms()
		out[0].Exp = 7
		testutil.AssertTerms(t, d, "L", "T^-1")
	})
}

func TestTerm(t *testing.T) {
	u := testutil.LoadUniverse(t)
	term := dimension.Term{Base: u.Length, Exp: 2}

	if got := term.Reciprocal(); got.Exp != -2 || got.Base != u.Length {
		t.Errorf("Reciprocal: got %v", got)
	}
	if got := term.Scale(-3); got.Exp != -6 {
		t.Errorf("Scale: got %v, want exponent -6", got)
	}
	if !term.SameSlot(dimension.Term{Base: u.Length, Exp: -1}) {
		t.Error("SameSlot: same base with a different exponent should match")
	}
	if term.SameSlot(dimension.Term{Base: u.Time, Exp: 2}) {
		t.Error("SameSlot: different bases should not match")
	}
	if got := term.String(); got != "L^2" {
		t.Errorf("String: got %q, want %q", got, "L^2")
	}
}

func TestSharedLabels(t *testing.T) {
	length := dimension.NewBase("length", types.MustLabel("L"))
	luminance := dimension.NewBase("luminance", types.MustLabel("L"))
	time := dimension.NewBase("time", types.MustLabel("T"))

	testutil.AssertNotEqual(t, length, luminance)
	if dimension.Equivalent(length, luminance) {
		t.Error("bases sharing a label must not be equivalent")
	}

	a := mul(mul(luminance, time), length)
	b := mul(length, mul(time, luminance))
	testutil.AssertEqual(t, a, b)

	// same label sorts by declaration order
	terms := a.Terms()
	if len(terms) != 3 || terms[0].Base != length || terms[1].Base != luminance || terms[2].Base != time {
		t.Errorf("unexpected term order: %v", terms)
	}

	testutil.AssertEqual(t, div(a, luminance), mul(length, time))
}

func TestBase(t *testing.T) {
	b := dimension.NewBase("", types.MustLabel("Θ"), dimension.WithSystem("si"))
	if b.Name() != "Θ" {
		t.Errorf("Name: got %q, want label fallback %q", b.Name(), "Θ")
	}
	if b.System() != "si" {
		t.Errorf("System: got %q, want %q", b.System(), "si")
	}
	testutil.AssertTerms(t, b, "Θ")

	twin := dimension.NewBase("", types.MustLabel("Θ"), dimension.WithSystem("si"))
	testutil.AssertNotEqual(t, b, twin)
}

func TestMultiplyConcurrent(t *testing.T) {
	u := testutil.LoadUniverse(t)
	want := mul(u.Force, u.Speed)

	var wg sync.WaitGroup
	results := make([]dimension.Dimension, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = mul(u.Force, u.Speed)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !dimension.Equal(got, want) {
			t.Errorf("result %d: got %s, want %s", i, got, want)
		}
	}
}
