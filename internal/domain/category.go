package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is one of the six SPI drought classes. The zero value is
// ExtremeDrought; declaration order is the canonical chart order.
type Category int

const (
	ExtremeDrought Category = iota
	SevereDrought
	ModerateDrought
	ExtremelyWet
	ModeratelyWet
	NearNormal

	// NumCategories is the size of the taxonomy; Record.Shares is indexed
	// by Category up to this bound.
	NumCategories = 6
)

// Categories returns all six categories in canonical chart order.
func Categories() []Category {
	return []Category{
		ExtremeDrought,
		SevereDrought,
		ModerateDrought,
		ExtremelyWet,
		ModeratelyWet,
		NearNormal,
	}
}

// GridRows returns the fixed 2×3 partition used by the summary grid:
// drought classes on the first row, wet and near-normal on the second.
func GridRows() [2][3]Category {
	return [2][3]Category{
		{ExtremeDrought, SevereDrought, ModerateDrought},
		{ExtremelyWet, ModeratelyWet, NearNormal},
	}
}

// Key returns the category's identifier as it appears in CSV headers and
// serialized payloads, e.g. "Extreme_Drought".
func (c Category) Key() string {
	switch c {
	case ExtremeDrought:
		return "Extreme_Drought"
	case SevereDrought:
		return "Severe_Drought"
	case ModerateDrought:
		return "Moderate_Drought"
	case ExtremelyWet:
		return "Extremely_Wet"
	case ModeratelyWet:
		return "Moderately_Wet"
	case NearNormal:
		return "Near_Normal"
	default:
		return ""
	}
}

// DisplayName returns the human-readable form of the key, e.g. "Extreme Drought".
func (c Category) DisplayName() string {
	return strings.ReplaceAll(c.Key(), "_", " ")
}

// Color returns the category's hex display color, shared by charts and tiles.
func (c Category) Color() string {
	switch c {
	case ExtremeDrought:
		return "#8B0000"
	case SevereDrought:
		return "#FF4500"
	case ModerateDrought:
		return "#FFA500"
	case ExtremelyWet:
		return "#0000FF"
	case ModeratelyWet:
		return "#4169E1"
	case NearNormal:
		return "#90EE90"
	default:
		return ""
	}
}

// Icon returns the emoji shown on the category's metric tile.
func (c Category) Icon() string {
	switch c {
	case ExtremeDrought:
		return "☀️"
	case SevereDrought:
		return "🔥"
	case ModerateDrought:
		return "🌤️"
	case ExtremelyWet:
		return "💧"
	case ModeratelyWet:
		return "🌧️"
	case NearNormal:
		return "🌿"
	default:
		return ""
	}
}

// TextColor returns the CSS color for text drawn over the category color.
// Dark backgrounds get white text, light backgrounds black.
func (c Category) TextColor() string {
	switch c {
	case ExtremeDrought, SevereDrought, ExtremelyWet:
		return "white"
	default:
		return "black"
	}
}

func (c Category) String() string { return c.Key() }

// MarshalJSON serializes the category as its key string.
func (c Category) MarshalJSON() ([]byte, error) {
	key := c.Key()
	if key == "" {
		return nil, fmt.Errorf("marshal category: invalid value %d", int(c))
	}
	return json.Marshal(key)
}
