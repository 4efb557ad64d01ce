package main

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/kurosakiaduma/phylo-sub002/pkg/genealogy"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage members",
}

var (
	memberAddName     string
	memberAddEmail    string
	memberAddDob      string
	memberAddGender   string
	memberAddDeceased bool
)

var memberAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an isolated member to the tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := loadTree(treePath)
		if err != nil {
			return err
		}

		m, err := core.AddMember(genealogy.MemberInput{
			Name:     memberAddName,
			Email:    memberAddEmail,
			Dob:      memberAddDob,
			Gender:   genealogy.Gender(memberAddGender),
			Deceased: memberAddDeceased,
		})
		if err != nil {
			return err
		}

		if err := saveTree(treePath, core); err != nil {
			return err
		}

		log.Infof("phylo: member.add tree=%s member=%s outcome=ok", core.Tree().ID, m.ID)
		fmt.Printf("added member %s (%s)\n", m.ID, m.Name)
		return nil
	},
}

func init() {
	memberAddCmd.Flags().StringVar(&memberAddName, "name", "", "member display name (required)")
	memberAddCmd.Flags().StringVar(&memberAddEmail, "email", "", "member email")
	memberAddCmd.Flags().StringVar(&memberAddDob, "dob", "", "date of birth")
	memberAddCmd.Flags().StringVar(&memberAddGender, "gender", "", "gender")
	memberAddCmd.Flags().BoolVar(&memberAddDeceased, "deceased", false, "mark the member deceased")
	_ = memberAddCmd.MarkFlagRequired("name")

	memberCmd.AddCommand(memberAddCmd)
}
