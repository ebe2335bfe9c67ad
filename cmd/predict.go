package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/compound-cli/internal/model"
)

var (
	predictID        string
	predictStructure string
	predictName      string

	unknownFormula  string
	unknownReceptor string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score a known compound by PubChem CID or name",
	Example: `  compound-cli predict --id 2244 --structure "CC(=O)OC1=CC=CC=C1C(=O)O"
  compound-cli predict --id 2244
  compound-cli predict --name aspirin -o yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initService("predict")
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		id := strings.TrimSpace(predictID)
		name := strings.TrimSpace(predictName)

		var out *model.Prediction
		switch {
		case id != "":
			structure := strings.TrimSpace(predictStructure)
			if structure == "" {
				structure, err = env.PubChem.Property(ctx, id, "CanonicalSMILES")
				if err != nil {
					return eris.Wrapf(err, "predict: canonical smiles for %s", id)
				}
			}
			out, err = env.Service.Predict(ctx, model.KnownInput{Structure: structure, ID: id})
		case name != "":
			out, err = env.Service.PredictByName(ctx, name)
		default:
			return eris.New("predict: one of --id or --name is required")
		}
		if err != nil {
			return err
		}

		return writeResult(cmd.OutOrStdout(), outputFormat, out)
	},
}

var predictUnknownCmd = &cobra.Command{
	Use:   "predict-unknown",
	Short: "Simulate scores for a compound known only by its formula",
	Example: `  compound-cli predict-unknown --formula C9H8O4 --receptor 1HSG`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initService("predict")
		if err != nil {
			return err
		}

		out, err := env.Service.PredictUnknown(cmd.Context(), model.UnknownInput{
			Formula:    unknownFormula,
			ReceptorID: unknownReceptor,
		})
		if err != nil {
			return err
		}

		return writeResult(cmd.OutOrStdout(), outputFormat, out)
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictID, "id", "", "PubChem CID")
	predictCmd.Flags().StringVar(&predictStructure, "structure", "", "SMILES structure (fetched from PubChem when omitted)")
	predictCmd.Flags().StringVar(&predictName, "name", "", "compound name to resolve to a CID")
	predictCmd.MarkFlagsMutuallyExclusive("id", "name")
	rootCmd.AddCommand(predictCmd)

	predictUnknownCmd.Flags().StringVar(&unknownFormula, "formula", "", "molecular formula, e.g. C9H8O4")
	predictUnknownCmd.Flags().StringVar(&unknownReceptor, "receptor", "", "receptor PDB id, e.g. 1HSG")
	_ = predictUnknownCmd.MarkFlagRequired("formula")
	_ = predictUnknownCmd.MarkFlagRequired("receptor")
	rootCmd.AddCommand(predictUnknownCmd)
}
