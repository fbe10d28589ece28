/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/meshjoin/InputParameters"
	"github.com/notargets/meshjoin/joins"
)

type JoinModel struct {
	CaseFile string
	Verbose  bool
}

const exampleJoinFile = `
########################################
Title: "Two owner join"
NeighborKeys: # process, partition, entity
  - [0, 0, 5]
  - [0, 0, 2]
  - [1, 0, 9]
  - [1, 0, 1]
PointList: [10, 20, 30, 40]
PointListDonor: [15, 5, 35, 25]
########################################
`

// JoinCmd represents the join command
var JoinCmd = &cobra.Command{
	Use:   "join",
	Short: "Reconcile the entry ordering of a partition interface",
	Long:  `Sorts join entries by neighbor key, reports owner sections and the canonical pair order`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		jm := &JoinModel{}
		if jm.CaseFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		jm.Verbose = viper.GetBool("verbose")
		jp := &InputParameters.JoinParameters{}
		if err = jp.Parse(readCaseFile(jm.CaseFile, exampleJoinFile)); err != nil {
			panic(err)
		}
		jp.Print()
		if _, err = RunJoin(jm, jp, os.Stdout); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(JoinCmd)
	JoinCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the join:\n\t- NeighborKeys\n\t- PointList, PointListDonor")
}

func RunJoin(jm *JoinModel, jp *InputParameters.JoinParameters, w io.Writer) (r *joins.Reconciliation[int32], err error) {
	var (
		opts []joins.Option
	)
	if jm.Verbose {
		opts = append(opts, joins.WithObserver(joins.NewLogObserver(w)))
	}
	neighborIndex, neighborKey, stride := jp.Buffers()
	if r, err = joins.ReconcileJoinOrdering(neighborIndex, neighborKey, stride,
		jp.PointList, jp.PointListDonor, opts...); err != nil {
		return
	}
	var sj []joins.SectionJoin[int32]
	if sj, err = r.SectionJoins(jp.PointList, jp.PointListDonor); err != nil {
		return
	}
	fmt.Fprintf(w, "%d sections\n", len(sj))
	for _, s := range sj {
		fmt.Fprintf(w, "owner %s: pl = %v pld = %v\n", s.Owner, s.PointList, s.PointListDonor)
	}
	fmt.Fprintf(w, "order = %v\n", r.Order)
	fmt.Fprintf(w, "order_pl = %v\n", r.PairOrder)
	return
}
