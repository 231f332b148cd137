package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"vaultcraft/cmd"
	"vaultcraft/internal/service"
	"vaultcraft/internal/util"
	"vaultcraft/pkg/chaingateway"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	_ "github.com/lib/pq"
)

// operator tooling: vault and strategy administration runs through here
// rather than through the public api

func main() {
	root := &cobra.Command{
		Use:   "vaultcraft",
		Short: "operator commands for the vaultcraft engine",
	}
	root.AddCommand(deployVaultCmd())
	root.AddCommand(attachStrategyCmd())
	root.AddCommand(importAllowlistCmd())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func deployVaultCmd() *cobra.Command {
	var asset, name, symbol, dacName, color string

	c := &cobra.Command{
		Use:   "deploy-vault",
		Short: "create a vault for an underlying asset",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			vault, err := handler.VaultRegistryService.DeployVault(context.Background(), service.DeployVaultInput{
				UnderlyingAsset: asset,
				Name:            name,
				Symbol:          symbol,
				DacName:         dacName,
				Color:           color,
			})
			if err != nil {
				return err
			}

			fmt.Printf("deployed vault %s with custody account %s\n", vault.VaultID, vault.CustodyAccount)
			return nil
		},
	}
	c.Flags().StringVar(&asset, "asset", "", "underlying asset symbol")
	c.Flags().StringVar(&name, "name", "", "display name")
	c.Flags().StringVar(&symbol, "symbol", "", "share symbol")
	c.Flags().StringVar(&dacName, "dac", "", "dac name")
	c.Flags().StringVar(&color, "color", "", "display color")
	c.MarkFlagRequired("asset")
	c.MarkFlagRequired("name")
	c.MarkFlagRequired("symbol")

	return c
}

func attachStrategyCmd() *cobra.Command {
	var vaultID, poolID, farmAccount, pairAsset string
	var investBps, maxSlippageBps int32

	c := &cobra.Command{
		Use:   "attach-strategy",
		Short: "bind a pool+farm strategy to a vault",
		RunE: func(c *cobra.Command, args []string) error {
			handler, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(handler)

			id, err := uuid.Parse(vaultID)
			if err != nil {
				return fmt.Errorf("invalid vault id %q: %w", vaultID, err)
			}

			strategy, err := handler.StrategyService.AttachStrategy(context.Background(), service.AttachStrategyInput{
				VaultID:        id,
				PoolID:         poolID,
				FarmAccount:    farmAccount,
				PairAsset:      pairAsset,
				InvestBps:      investBps,
				MaxSlippageBps: maxSlippageBps,
			})
			if err != nil {
				return err
			}

			fmt.Printf("attached strategy %s to vault %s\n", strategy.StrategyID, strategy.VaultID)
			return nil
		},
	}
	c.Flags().StringVar(&vaultID, "vault", "", "vault id")
	c.Flags().StringVar(&poolID, "pool", "", "liquidity pool id")
	c.Flags().StringVar(&farmAccount, "farm", "", "farm account")
	c.Flags().StringVar(&pairAsset, "pair", "", "pool pair asset")
	c.Flags().Int32Var(&investBps, "invest-bps", 8000, "share of idle capital to deploy, in bps")
	c.Flags().Int32Var(&maxSlippageBps, "slippage-bps", 100, "max swap slippage, in bps")
	c.MarkFlagRequired("vault")
	c.MarkFlagRequired("pool")
	c.MarkFlagRequired("farm")
	c.MarkFlagRequired("pair")

	return c
}

type allowlistRow struct {
	Account string `csv:"account"`
}

func importAllowlistCmd() *cobra.Command {
	var batchSize int

	c := &cobra.Command{
		Use:   "import-allowlist <file.csv>",
		Short: "push a csv of accounts to the access gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			secrets, err := util.LoadSecrets()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows := []allowlistRow{}
			if err := gocsv.UnmarshalFile(f, &rows); err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			accounts := []string{}
			for _, row := range rows {
				if row.Account != "" {
					accounts = append(accounts, row.Account)
				}
			}
			if len(accounts) == 0 {
				return fmt.Errorf("%s has no accounts", args[0])
			}

			gateway := chaingateway.NewClient(http.DefaultClient, secrets.ChainGateway, secrets.ChainGatewayKey)
			ctx := context.Background()
			for start := 0; start < len(accounts); start += batchSize {
				end := start + batchSize
				if end > len(accounts) {
					end = len(accounts)
				}
				if err := gateway.UpdateAllowlist(ctx, accounts[start:end]); err != nil {
					return fmt.Errorf("allowlist batch at %d failed: %w", start, err)
				}
			}

			fmt.Printf("registered %d accounts\n", len(accounts))
			return nil
		},
	}
	c.Flags().IntVar(&batchSize, "batch-size", 500, "accounts per gateway call")

	return c
}
