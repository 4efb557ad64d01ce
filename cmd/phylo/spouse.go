package main

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/kurosakiaduma/phylo-sub002/pkg/genealogy"
)

var spouseCmd = &cobra.Command{
	Use:   "spouse",
	Short: "Manage spouse edges",
}

var (
	spouseAddMemberID string
	spouseAddName     string
	spouseAddGender   string
)

var spouseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new spouse for an existing member",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := loadTree(treePath)
		if err != nil {
			return err
		}

		s, err := core.AddSpouse(spouseAddMemberID, genealogy.MemberInput{
			Name:   spouseAddName,
			Gender: genealogy.Gender(spouseAddGender),
		})
		if err != nil {
			log.Infof("phylo: spouse.add tree=%s member=%s outcome=error", core.Tree().ID, spouseAddMemberID)
			return err
		}

		if err := saveTree(treePath, core); err != nil {
			return err
		}

		log.Infof("phylo: spouse.add tree=%s member=%s spouse=%s outcome=ok", core.Tree().ID, spouseAddMemberID, s.ID)
		fmt.Printf("added spouse %s (%s)\n", s.ID, s.Name)
		return nil
	},
}

func init() {
	spouseAddCmd.Flags().StringVar(&spouseAddMemberID, "member", "", "existing member id (required)")
	spouseAddCmd.Flags().StringVar(&spouseAddName, "name", "", "new spouse's display name (required)")
	spouseAddCmd.Flags().StringVar(&spouseAddGender, "gender", "", "new spouse's gender")
	_ = spouseAddCmd.MarkFlagRequired("member")
	_ = spouseAddCmd.MarkFlagRequired("name")

	spouseCmd.AddCommand(spouseAddCmd)
}
