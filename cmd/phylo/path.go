package main

import (
	"fmt"
	"strings"

	log "github.com/golang/glog"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path ID_A ID_B",
	Short: "Find the shortest path between two members",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, err := loadTree(treePath)
		if err != nil {
			return err
		}

		route := core.FindPath(args[0], args[1])
		log.Infof("phylo: path tree=%s a=%s b=%s outcome=ok hops=%d", core.Tree().ID, args[0], args[1], len(route))

		if len(route) == 0 {
			fmt.Println("no path found")
			return nil
		}
		fmt.Println(strings.Join(route, " -> "))
		return nil
	},
}
