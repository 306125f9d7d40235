package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"acconsole/internal/console"
	"acconsole/pkg/sdk"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var compensationCmd = &cobra.Command{
	Use:     "compensation",
	Aliases: []string{"comp"},
	Short:   "Manage compensation packages",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		RootCmd.PersistentPreRun(cmd, args)
		requireSession()
	},
}

var compFile, compID, compOut string
var compYes bool

var compensationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List compensation packages",
	Run: func(cmd *cobra.Command, args []string) {
		list, out := Container.Console.LoadCompensations(ctx())
		if !out.OK() {
			log.Fatalf("Error: %s", out.Message())
		}
		printTable("COMPENSATIONS", console.CompensationTable(list))
	},
}

var compensationSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Create or update a package from a YAML file",
	Run: func(cmd *cobra.Command, args []string) {
		handleCompensationSave(compFile, compID)
	},
}

var compensationDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a compensation package",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !compYes && !confirm(console.DeletePrompt(console.ModuleCompensation)) {
			return
		}
		report(Container.Console.DeleteCompensation(ctx(), args[0]))
	},
}

var compensationExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Write a package as YAML",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handleCompensationExport(args[0], compOut)
	},
}

func init() {
	compensationSaveCmd.Flags().StringVarP(&compFile, "file", "f", "", "YAML package file")
	compensationSaveCmd.Flags().StringVar(&compID, "id", "", "Package to update (overrides the file's id)")
	compensationSaveCmd.MarkFlagRequired("file")
	compensationDeleteCmd.Flags().BoolVarP(&compYes, "yes", "y", false, "Skip confirmation")
	compensationExportCmd.Flags().StringVarP(&compOut, "out", "o", "", "Output file (default stdout)")

	compensationCmd.AddCommand(compensationListCmd, compensationSaveCmd, compensationDeleteCmd, compensationExportCmd)
	RootCmd.AddCommand(compensationCmd)
}

// compensationFile is the YAML layout of a package.
type compensationFile struct {
	ID          string     `yaml:"id,omitempty"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Items       []sdk.Item `yaml:"items"`
}

func decodeCompensation(r io.Reader) (console.CompensationForm, error) {
	var f compensationFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return console.CompensationForm{}, fmt.Errorf("decode package: %w", err)
	}
	form := console.CompensationFormFrom(sdk.Compensation{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		Items:       f.Items,
	})
	return form, nil
}

func encodeCompensation(w io.Writer, c sdk.Compensation) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(compensationFile{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Items:       c.Items,
	}); err != nil {
		return fmt.Errorf("encode package: %w", err)
	}
	return enc.Close()
}

func handleCompensationSave(path, id string) {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Error opening package file: %v", err)
	}
	defer file.Close()

	form, err := decodeCompensation(file)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	if id != "" {
		form.ID = id
	}

	report(Container.Console.SaveCompensation(ctx(), form))
}

func handleCompensationExport(id, path string) {
	list, out := Container.Console.LoadCompensations(ctx())
	if !out.OK() {
		log.Fatalf("Error: %s", out.Message())
	}

	var found *sdk.Compensation
	for i := range list {
		if list[i].ID == id {
			found = &list[i]
			break
		}
	}
	if found == nil {
		log.Fatalf("Error: 补偿不存在")
	}

	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			log.Fatalf("Error creating %s: %v", path, err)
		}
		defer f.Close()
		w = f
	}
	if err := encodeCompensation(w, *found); err != nil {
		log.Fatalf("Error: %v", err)
	}
	if path != "" {
		fmt.Printf("Package %s written to %s\n", id, path)
	}
}
