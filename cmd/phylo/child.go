package main

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/kurosakiaduma/phylo-sub002/pkg/genealogy"
)

var childCmd = &cobra.Command{
	Use:   "child",
	Short: "Manage parent-child edges",
}

var (
	childAddParentID       string
	childAddSecondParentID string
	childAddName           string
)

var childAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new child under one or two existing parents",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := loadTree(treePath)
		if err != nil {
			return err
		}

		child, err := core.AddChild(childAddParentID, genealogy.MemberInput{Name: childAddName}, childAddSecondParentID)
		if err != nil {
			log.Infof("phylo: child.add tree=%s parent=%s outcome=error", core.Tree().ID, childAddParentID)
			return err
		}

		if err := saveTree(treePath, core); err != nil {
			return err
		}

		log.Infof("phylo: child.add tree=%s parent=%s child=%s outcome=ok", core.Tree().ID, childAddParentID, child.ID)
		fmt.Printf("added child %s (%s)\n", child.ID, child.Name)
		return nil
	},
}

func init() {
	childAddCmd.Flags().StringVar(&childAddParentID, "parent", "", "parent member id (required)")
	childAddCmd.Flags().StringVar(&childAddSecondParentID, "second-parent", "", "second parent member id")
	childAddCmd.Flags().StringVar(&childAddName, "name", "", "new child's display name (required)")
	_ = childAddCmd.MarkFlagRequired("parent")
	_ = childAddCmd.MarkFlagRequired("name")

	childCmd.AddCommand(childAddCmd)
}
