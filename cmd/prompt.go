package cmd

import (
	"github.com/manifoldco/promptui"
	"github.com/rdevries/modechord/model"
	"github.com/rdevries/modechord/theory"
)

// pickKeyAndMode falls back to interactive selection for whichever of the two
// was not given as a flag.
func pickKeyAndMode(key model.Note, mode model.Mode) (model.Note, model.Mode, error) {
	if key == "" {
		prompt := promptui.Select{
			Label: "Key",
			Items: theory.Roots(),
		}
		_, choice, err := prompt.Run()
		if err != nil {
			return "", "", err
		}
		key = choice
	}
	if mode == "" {
		prompt := promptui.Select{
			Label: "Mode",
			Items: model.AllModes,
		}
		_, choice, err := prompt.Run()
		if err != nil {
			return "", "", err
		}
		mode = choice
	}
	return key, mode, nil
}
