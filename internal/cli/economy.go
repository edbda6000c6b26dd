package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStarsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stars",
		Short: "Star balance commands",
	}

	cmd.AddCommand(newStarsBalanceCmd())
	cmd.AddCommand(newStarsAddCmd())

	return cmd
}

func newStarsBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <username>",
		Short: "Show a player's star balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Balance

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/balance", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStarsAddCmd() *cobra.Command {
	var amount int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add stars to the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"stars": amount}
			var result Balance

			if err := client.Post("/api/v1/players/me/stars", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 0, "Number of stars to add (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score commands",
	}

	cmd.AddCommand(newScoreSubmitCmd())

	return cmd
}

func newScoreSubmitCmd() *cobra.Command {
	var score int

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a run score for the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"score": score}
			var result ScoreResult

			if err := client.Post("/api/v1/players/me/score", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "value", 0, "Score to submit (required)")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSkinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skin",
		Short: "Skin catalog and inventory commands",
	}

	cmd.AddCommand(newSkinCatalogCmd())
	cmd.AddCommand(newSkinBuyCmd())
	cmd.AddCommand(newSkinEquipCmd())
	cmd.AddCommand(newSkinCheckCmd())
	cmd.AddCommand(newSkinCurrentCmd())

	return cmd
}

func newSkinCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the skin price catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Catalog

			if err := client.Get("/api/v1/skins", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSkinBuyCmd() *cobra.Command {
	var skinID int

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Purchase a skin for the current account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"skin_id": skinID}
			var result Player

			if err := client.Post("/api/v1/players/me/skins/purchase", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&skinID, "id", 0, "Skin id to buy (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newSkinEquipCmd() *cobra.Command {
	var skinID int

	cmd := &cobra.Command{
		Use:   "equip",
		Short: "Equip an owned skin",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{"skin_id": skinID}
			var result CurrentSkin

			if err := client.Put("/api/v1/players/me/skin", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&skinID, "id", 0, "Skin id to equip (required)")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newSkinCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <username> <skin-id>",
		Short: "Check whether a player owns a skin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Ownership

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/skins/%s", args[0], args[1]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSkinCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current <username>",
		Short: "Show a player's equipped skin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CurrentSkin

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/current-skin", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the best-score leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardEntry

			if err := client.Get("/api/v1/leaderboard", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
