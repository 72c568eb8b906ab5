package helper_test

import (
	"testing"
	"visitorpass/config"
	"visitorpass/helper"

	"github.com/stretchr/testify/assert"
)

func TestRunner_UnknownAction(t *testing.T) {
	for _, action := range []string{"", "sideways", "UP"} {
		t.Run(action, func(t *testing.T) {
			err := helper.Runner(&config.Config{}, action)

			assert.ErrorIs(t, err, helper.ErrUnknownAction)
		})
	}
}
