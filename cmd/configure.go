package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/marcus/swipemodal/internal/config"
	"github.com/marcus/swipemodal/pkg/modal"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Edit the saved modal defaults",
	Long: `Edit the defaults stored in .swipemodal/config.json (or --config).
Flags and SWIPEMODAL_* environment variables still override saved values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Path(getBaseDir(), configPath)

		cfg, err := config.LoadFile(path)
		if err != nil {
			return err
		}

		values := newConfigureValues(cfg)
		if err := configureForm(values).Run(); err != nil {
			return fmt.Errorf("configure: %w", err)
		}
		if err := values.apply(cfg); err != nil {
			return err
		}
		if err := config.Save(path, cfg); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "SAVED %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

// configureValues holds the form fields. Numbers are edited as text.
type configureValues struct {
	Direction      string
	BackdropClose  bool
	Swipe          bool
	SwipeThreshold string
	AnimationMS    string
	Flex           string
	BodyFile       string
}

func newConfigureValues(cfg *config.Config) *configureValues {
	return &configureValues{
		Direction:      cfg.Direction,
		BackdropClose:  cfg.CloseOnBackdropPress,
		Swipe:          cfg.SwipeToClose,
		SwipeThreshold: strconv.Itoa(cfg.SwipeThreshold),
		AnimationMS:    strconv.Itoa(cfg.AnimationMS),
		Flex:           strconv.FormatFloat(cfg.Flex, 'g', -1, 64),
		BodyFile:       cfg.BodyFile,
	}
}

func configureForm(v *configureValues) *huh.Form {
	var dirs []huh.Option[string]
	for _, d := range modal.Directions() {
		dirs = append(dirs, huh.NewOption(d.String(), d.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Direction").
				Description("Edge the modal slides in from").
				Options(dirs...).
				Value(&v.Direction),
			huh.NewConfirm().
				Title("Close on backdrop press?").
				Value(&v.BackdropClose),
			huh.NewConfirm().
				Title("Swipe to close?").
				Value(&v.Swipe),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Swipe threshold").
				Description("Cells a swipe must travel toward the edge").
				Value(&v.SwipeThreshold).
				Validate(positiveInt),
			huh.NewInput().
				Title("Animation duration (ms)").
				Value(&v.AnimationMS).
				Validate(nonNegativeInt),
			huh.NewInput().
				Title("Flex").
				Description("Share of the screen the content takes, in (0, 1]").
				Value(&v.Flex).
				Validate(validFlex),
			huh.NewInput().
				Title("Body file").
				Description("Markdown file for the modal body, empty for the default").
				Value(&v.BodyFile),
		),
	)
}

// apply copies the form values into cfg.
func (v *configureValues) apply(cfg *config.Config) error {
	threshold, err := strconv.Atoi(v.SwipeThreshold)
	if err != nil {
		return fmt.Errorf("swipe threshold: %w", err)
	}
	ms, err := strconv.Atoi(v.AnimationMS)
	if err != nil {
		return fmt.Errorf("animation duration: %w", err)
	}
	flex, err := strconv.ParseFloat(v.Flex, 64)
	if err != nil {
		return fmt.Errorf("flex: %w", err)
	}

	next := *cfg
	next.Direction = v.Direction
	next.CloseOnBackdropPress = v.BackdropClose
	next.SwipeToClose = v.Swipe
	next.SwipeThreshold = threshold
	next.AnimationMS = ms
	next.Flex = flex
	next.BodyFile = v.BodyFile
	if err := next.Validate(); err != nil {
		return err
	}
	*cfg = next
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("not a number")
	}
	if n <= 0 {
		return errors.New("must be positive")
	}
	return nil
}

func nonNegativeInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return errors.New("not a number")
	}
	if n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func validFlex(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("not a number")
	}
	if f <= 0 || f > 1 {
		return errors.New("must be in (0, 1]")
	}
	return nil
}
