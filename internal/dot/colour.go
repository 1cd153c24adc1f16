package dot

import (
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint
)

const maxRGB = 240

// Gradient maps value to a hex colour between blue (minValue) and red (maxValue). Every value is
// red when minValue and maxValue are equal.
func Gradient(value, minValue, maxValue float64) (string, error) {
	fraction := 1.0
	if maxValue > minValue {
		fraction = (value - minValue) / (maxValue - minValue)
	}

	red := maxRGB * fraction
	blue := maxRGB - red

	colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}
