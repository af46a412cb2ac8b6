package headline

import (
	"math"
	"testing"
)

func TestPageRequestOffset(t *testing.T) {
	cases := []struct {
		req  PageRequest
		want int
	}{
		{PageRequest{Number: 0, Size: 10}, 0},
		{PageRequest{Number: 3, Size: 25}, 75},
		{PageRequest{Number: 5, Size: 0}, 0},
		{PageRequest{Number: math.MaxInt / 2, Size: 10}, math.MaxInt},
		{PageRequest{Number: math.MaxInt, Size: 1}, math.MaxInt},
	}
	for _, c := range cases {
		if got := c.req.Offset(); got != c.want {
			t.Errorf("%+v.Offset() = %d, want %d", c.req, got, c.want)
		}
	}
}
