package main

import (
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME",
	Short: "Resolve a compound name to a PubChem CID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initService("predict")
		if err != nil {
			return err
		}

		res, err := env.Service.Resolve(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), outputFormat, res)
	},
}

var checkFormulaCmd = &cobra.Command{
	Use:   "check-formula FORMULA",
	Short: "Check whether PubChem lists a compound with the exact formula",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initService("predict")
		if err != nil {
			return err
		}

		res, err := env.Service.CheckFormula(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeResult(cmd.OutOrStdout(), outputFormat, res)
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(checkFormulaCmd)
}
