package main

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
)

var relationshipCmd = &cobra.Command{
	Use:   "relationship ID_A ID_B",
	Short: "Print the canonical relationship label for the ordered pair ID_A, ID_B",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := loadTree(treePath)
		if err != nil {
			return err
		}

		label := core.ComputeRelationship(args[0], args[1])
		log.Infof("phylo: relationship tree=%s a=%s b=%s outcome=ok", core.Tree().ID, args[0], args[1])
		fmt.Println(label)
		return nil
	},
}
