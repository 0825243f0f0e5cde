package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	common "github.com/gameshelf/gameshelf/internal/cli/common"
	gamecmd "github.com/gameshelf/gameshelf/internal/cli/gamecmd"
	usercmd "github.com/gameshelf/gameshelf/internal/cli/usercmd"
)

func main() {
	root := &cobra.Command{Use: "gameshelf", Short: "GameShelf unified CLI"}

	root.AddCommand(gamecmd.New())
	root.AddCommand(usercmd.New())

	comp := &cobra.Command{Use: "completion [bash|zsh|fish|powershell]", Short: "Generate shell completion"}
	comp.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			log.Fatalf("specify a shell: bash|zsh|fish|powershell")
		}
		switch args[0] {
		case "bash":
			root.GenBashCompletion(os.Stdout)
		case "zsh":
			root.GenZshCompletion(os.Stdout)
		case "fish":
			root.GenFishCompletion(os.Stdout, true)
		case "powershell":
			root.GenPowerShellCompletionWithDesc(os.Stdout)
		default:
			log.Fatalf("unknown shell: %s", args[0])
		}
	}
	root.AddCommand(comp)

	cfgTest := &cobra.Command{Use: "config-test", Short: "Validate a config file"}
	var cfgFile, section string
	cfgTest.Flags().StringVar(&cfgFile, "config", "", "config file path")
	cfgTest.Flags().StringVar(&section, "section", "", "optional section: game_service|user_service")
	cfgTest.RunE = func(cmd *cobra.Command, args []string) error {
		if cfgFile == "" {
			return fmt.Errorf("--config required")
		}
		v := viper.New()
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
		check := func(section string, fn func(*viper.Viper, bool) error) error {
			sub := v.Sub(section)
			if sub == nil {
				sub = v
			}
			return fn(sub, true)
		}
		switch section {
		case "game_service":
			return check(section, common.ValidateGameConfig)
		case "user_service":
			return check(section, common.ValidateUserConfig)
		case "":
			if err := check("game_service", common.ValidateGameConfig); err == nil {
				fmt.Println("game_service config OK")
				return nil
			}
			if err := check("user_service", common.ValidateUserConfig); err == nil {
				fmt.Println("user_service config OK")
				return nil
			}
			return fmt.Errorf("no valid section found; specify --section")
		default:
			return fmt.Errorf("unknown section: %s", section)
		}
	}
	root.AddCommand(cfgTest)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
