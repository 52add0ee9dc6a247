package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evcraddock/portfolio/internal/gallery"
)

func newPetCmd() *cobra.Command {
	var random bool

	cmd := &cobra.Command{
		Use:   "pet [name action]",
		Short: "Show a pet picture",
		Long: `Prints the URL of a pet picture. Name and action may be given by label or number:
  names:   1 pisu, 2 karzi
  actions: 1 Sleeping, 2 Eating, 3 Funny, 4 Busy`,
		Args: func(cmd *cobra.Command, args []string) error {
			if random {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			serverURL, err := getServerURL()
			if err != nil {
				return err
			}
			if random {
				return printPicture(cmd.OutOrStdout(), serverURL, gallery.Random(nil))
			}
			return runPet(cmd.OutOrStdout(), serverURL, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&random, "random", false, "pick a random picture of both pets")

	return cmd
}

func runPet(w io.Writer, serverURL, name, action string) error {
	nameIdx, err := lookupIndex(gallery.Names, name)
	if err != nil {
		return fmt.Errorf("unknown pet %q", name)
	}
	actionIdx, err := lookupIndex(gallery.Actions, action)
	if err != nil {
		return fmt.Errorf("unknown action %q", action)
	}

	url, ok := gallery.Pick(nameIdx, actionIdx)
	if !ok {
		return fmt.Errorf("choose both a pet and an action")
	}
	return printPicture(w, serverURL, url)
}

func printPicture(w io.Writer, serverURL, path string) error {
	url := strings.TrimRight(serverURL, "/") + "/" + path
	if isJSON() {
		return printJSON(w, map[string]interface{}{"url": url, "max_size": gallery.MaxSize})
	}
	fmt.Fprintln(w, url)
	return nil
}

// lookupIndex resolves a label (case-insensitive) or its number.
func lookupIndex(labels map[int]string, s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := labels[n]; ok {
			return n, nil
		}
		return 0, fmt.Errorf("no entry %d", n)
	}
	for i, label := range labels {
		if strings.EqualFold(label, s) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no entry %q", s)
}
