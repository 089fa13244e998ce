package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	maskapp "github.com/botfut/botfut/application/mask"
	"github.com/botfut/botfut/constant"
	"github.com/botfut/botfut/model"
	"github.com/botfut/botfut/utils/mask"
)

const (
	flagJSON   = "json"
	flagDigits = "digits"
	flagIndex  = "index"
)

// Execute runs the maskctl root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Every call returns fresh commands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "maskctl",
		Short:         "Apply Bot Fut input masks from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().Bool(flagJSON, false, "print the full mask response as JSON")

	app := maskapp.NewMaskApp()

	rootCmd.AddCommand(
		maskCmd(app, "phone", constant.MaskPhone, "Mask a phone number", "maskctl phone 11987654321"),
		maskCmd(app, "date", constant.MaskDate, "Mask a DD/MM/YYYY date", "maskctl date 15032024"),
		maskCmd(app, "time", constant.MaskTime, "Mask an HH:mm time", "maskctl time 0930"),
		moneyCmd(app),
		slotsCmd(),
	)
	return rootCmd
}

func maskCmd(app maskapp.MaskApp, use string, kind constant.MaskKind, short, example string) *cobra.Command {
	return &cobra.Command{
		Use:     use + " <input>",
		Short:   short,
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return apply(c, app, kind, args[0])
		},
	}
}

func moneyCmd(app maskapp.MaskApp) *cobra.Command {
	c := &cobra.Command{
		Use:     "money <input>",
		Short:   "Parse an amount in reais and print it with pt-BR separators",
		Example: "maskctl money \"R$ 1.234,56\"\nmaskctl money --digits 123456",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			kind := constant.MaskMoney
			if digits, _ := c.Flags().GetBool(flagDigits); digits {
				kind = constant.MaskMoneyDigits
			}
			return apply(c, app, kind, args[0])
		},
	}
	c.Flags().Bool(flagDigits, false, "read every digit as cents")
	return c
}

func slotsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "slots <input>",
		Short:   "Fill the segmented phone inputs as a paste at --index would",
		Example: "maskctl slots --index 4 11987654321",
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			index, _ := c.Flags().GetInt(flagIndex)
			slots := mask.FillPhoneSlots(mask.NewPhoneSlots(), index, args[0])

			shown := make([]string, len(slots))
			for i, s := range slots {
				if s == "" {
					s = "_"
				}
				shown[i] = s
			}
			fmt.Fprintln(c.OutOrStdout(), strings.Join(shown, " "))
			fmt.Fprintln(c.OutOrStdout(), mask.FormatPhoneNumber(mask.JoinSlots(slots)))
			return nil
		},
	}
	c.Flags().Int(flagIndex, 0, "slot receiving the first digit")
	return c
}

func apply(c *cobra.Command, app maskapp.MaskApp, kind constant.MaskKind, input string) error {
	res, err := app.Apply(context.Background(), &model.MaskRequest{Kind: kind, Input: input})
	if err != nil {
		return err
	}

	if asJSON, _ := c.Flags().GetBool(flagJSON); asJSON {
		enc := json.NewEncoder(c.OutOrStdout())
		return enc.Encode(res)
	}

	fmt.Fprintln(c.OutOrStdout(), res.Display)
	return nil
}
