package main

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
)

var relationsLabel string

var relationsCmd = &cobra.Command{
	Use:   "relations ID",
	Short: "List every member standing in the named relation to ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := loadTree(treePath)
		if err != nil {
			return err
		}

		matches := core.ListRelations(args[0], relationsLabel)
		log.Infof("phylo: relations tree=%s member=%s label=%s outcome=ok count=%d",
			core.Tree().ID, args[0], relationsLabel, len(matches))

		if len(matches) == 0 {
			fmt.Println("no matches")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%s\t%s\n", m.ID, m.Name)
		}
		return nil
	},
}

func init() {
	relationsCmd.Flags().StringVar(&relationsLabel, "label", "", "relationship label to match, e.g. \"1st Cousin\" (required)")
	_ = relationsCmd.MarkFlagRequired("label")
}
