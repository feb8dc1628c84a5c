package quantity_test

import (
	"errors"
	"testing"

	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/quantity"
	"github.com/arthur-debert/nanounits/testutil"
)

func TestNew(t *testing.T) {
	u := testutil.LoadUniverse(t)

	q := quantity.New(9.81, u.Acceleration)
	if q.Value() != 9.81 {
		t.Errorf("Value: got %v, want 9.81", q.Value())
	}
	testutil.AssertEqual(t, q.Dimension(), u.Acceleration)

	testutil.AssertEqual(t, quantity.New(3, nil).Dimension(), dimension.One)
	testutil.AssertEqual(t, quantity.Quantity{}.Dimension(), dimension.One)
}

func TestString(t *testing.T) {
	u := testutil.LoadUniverse(t)

	tests := []struct {
		q    quantity.Quantity
		want string
	}{
		{quantity.New(9.81, u.Acceleration), "9.81 L/T²"},
		{quantity.New(2, u.Length), "2 L"},
		{quantity.New(0.5, nil), "0.5"},
		{quantity.New(1e-9, u.Frequency), "1e-09 1/T"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.q.String(); got != tt.want {
				t.Errorf("String: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAddSub(t *testing.T) {
	u := testutil.LoadUniverse(t)
	perTime := dimension.Reciprocal(u.Time)

	t.Run("same dimension", func(t *testing.T) {
		sum, err := quantity.Add(quantity.New(1, u.Length), quantity.New(2, u.Length))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if sum.Value() != 3 {
			t.Errorf("Add: got %v, want 3", sum.Value())
		}
		testutil.AssertEqual(t, sum.Dimension(), u.Length)
	})

	t.Run("result takes the common type", func(t *testing.T) {
		sum, err := quantity.Add(quantity.New(1, perTime), quantity.New(2, u.Frequency))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		testutil.AssertEqual(t, sum.Dimension(), u.Frequency)

		diff, err := quantity.Sub(quantity.New(5, u.Speed), quantity.New(2, u.Velocity))
		if err != nil {
			t.Fatalf("Sub: %v", err)
		}
		if diff.Value() != 3 {
			t.Errorf("Sub: got %v, want 3", diff.Value())
		}
		testutil.AssertEqual(t, diff.Dimension(), u.Velocity)
	})

	t.Run("incompatible", func(t *testing.T) {
		_, err := quantity.Add(quantity.New(1, u.Frequency), quantity.New(1, u.Action))
		if !errors.Is(err, quantity.ErrIncompatible) {
			t.Errorf("got %v, want ErrIncompatible", err)
		}
		if !errors.Is(err, dimension.ErrNoCommonType) {
			t.Errorf("got %v, want it to wrap ErrNoCommonType", err)
		}

		if _, err := quantity.Sub(quantity.New(1, u.Length), quantity.New(1, u.Time)); !errors.Is(err, quantity.ErrIncompatible) {
			t.Errorf("got %v, want ErrIncompatible", err)
		}
	})
}

func TestCompare(t *testing.T) {
	u := testutil.LoadUniverse(t)

	tests := []struct {
		name string
		a, b quantity.Quantity
		want int
	}{
		{"less", quantity.New(1, u.Length), quantity.New(2, u.Length), -1},
		{"equal", quantity.New(2, u.Speed), quantity.New(2, u.Velocity), 0},
		{"greater", quantity.New(3, dimension.Divide(u.Area, u.Length)), quantity.New(2, u.Length), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := quantity.Compare(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if got != tt.want {
				t.Errorf("Compare: got %d, want %d", got, tt.want)
			}
		})
	}

	if _, err := quantity.Compare(quantity.New(1, u.Area), quantity.New(1, u.Volume)); !errors.Is(err, quantity.ErrIncompatible) {
		t.Errorf("got %v, want ErrIncompatible", err)
	}
}

func TestMulDivPow(t *testing.T) {
	u := testutil.LoadUniverse(t)

	distance := quantity.New(100, u.Length)
	duration := quantity.New(20, u.Time)

	speed := quantity.Div(distance, duration)
	if speed.Value() != 5 {
		t.Errorf("Div: got %v, want 5", speed.Value())
	}
	testutil.AssertConvertible(t, speed.Dimension(), u.Speed, true)

	back := quantity.Mul(speed, duration)
	if back.Value() != 100 {
		t.Errorf("Mul: got %v, want 100", back.Value())
	}
	testutil.AssertEqual(t, back.Dimension(), u.Length)

	area := quantity.Pow(quantity.New(3, u.Length), 2)
	if area.Value() != 9 {
		t.Errorf("Pow: got %v, want 9", area.Value())
	}
	testutil.AssertEqual(t, area.Dimension(), dimension.Square(u.Length))

	ratio := quantity.Div(distance, distance)
	testutil.AssertEqual(t, ratio.Dimension(), dimension.One)

	doubled := distance.Scale(2)
	if doubled.Value() != 200 {
		t.Errorf("Scale: got %v, want 200", doubled.Value())
	}
}

func TestAs(t *testing.T) {
	u := testutil.LoadUniverse(t)

	v, err := quantity.New(3, dimension.Divide(u.Length, u.Time)).As(u.Velocity)
	if err != nil {
		t.Fatalf("As: %v", err)
	}
	testutil.AssertEqual(t, v.Dimension(), u.Velocity)
	if v.Value() != 3 {
		t.Errorf("As changed the value: got %v", v.Value())
	}

	if _, err := quantity.New(1, u.Frequency).As(u.Action); !errors.Is(err, quantity.ErrIncompatible) {
		t.Errorf("got %v, want ErrIncompatible", err)
	}
	if _, err := quantity.New(1, u.Length).As(u.Area); !errors.Is(err, quantity.ErrIncompatible) {
		t.Errorf("got %v, want ErrIncompatible", err)
	}
}
