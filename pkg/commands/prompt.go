package commands

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/keep/pkg/model"
)

// promptTask collects a new task interactively.
func promptTask() (title, category, priority string, err error) {
	titlePrompt := promptui.Prompt{
		Label: "Task",
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("a task needs a title")
			}
			return nil
		},
	}
	title, err = titlePrompt.Run()
	if err != nil {
		return "", "", "", err
	}

	categorySelect := promptui.Select{
		Label: "Category",
		Items: model.TaskCategories(),
	}
	_, category, err = categorySelect.Run()
	if err != nil {
		return "", "", "", err
	}

	prioritySelect := promptui.Select{
		Label:     "Priority",
		Items:     []string{string(model.PriorityLow), string(model.PriorityMedium), string(model.PriorityHigh)},
		CursorPos: 1, // default to medium
	}
	_, priority, err = prioritySelect.Run()
	if err != nil {
		return "", "", "", err
	}

	return strings.TrimSpace(title), category, priority, nil
}
