package main

import (
	"fmt"
	"os"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the full integrity sweep over the tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := loadTree(treePath)
		if err != nil {
			return err
		}

		report := core.Validate()
		log.Infof("phylo: validate tree=%s outcome=%s errors=%d warnings=%d",
			core.Tree().ID, okLabel(report.OK()), len(report.Errors), len(report.Warnings))

		for _, w := range report.Warnings {
			fmt.Println(w)
		}
		for _, e := range report.Errors {
			fmt.Println(e)
		}
		if !report.OK() {
			fmt.Println("tree has", len(report.Errors), "error(s)")
			os.Exit(1)
		}
		fmt.Println("tree is valid")
		return nil
	},
}

func okLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "error"
}
