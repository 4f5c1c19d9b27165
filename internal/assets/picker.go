package assets

import (
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/draggable-clock/internal/config"
	"github.com/iburimskiy/draggable-clock/internal/overlay"
)

// Picker is the auxiliary face chooser window.
type Picker struct{}

// Pick shows the face list with the current face preselected.
func (Picker) Pick(names []string, current string) (string, error) {
	if len(names) == 0 {
		return "", ErrNoFaces
	}

	name, err := zenity.List(
		"Choose a clock face",
		names,
		zenity.Title(config.AppName),
		zenity.DefaultItems(current),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", overlay.ErrPickCanceled
		}
		return "", fmt.Errorf("face picker: %w", err)
	}
	if name == "" {
		return "", overlay.ErrPickCanceled
	}
	return name, nil
}
