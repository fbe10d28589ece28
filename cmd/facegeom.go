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

	"github.com/notargets/meshjoin/InputParameters"
	"github.com/notargets/meshjoin/geometry"
)

const exampleFaceFile = `
########################################
Title: "Unit square"
PointList: [1]
X: [0, 1, 1, 0]
Y: [0, 0, 1, 1]
Z: [0, 0, 0, 0]
FaceVtx: [1, 2, 3, 4]
FaceVtxIdx: [0, 4]
########################################
`

type FaceGeometry struct {
	Centroid    []float64 // 3 per boundary face
	Length      []float64 // 1 per boundary face
	CellCenters []float64 // 3 per cell, only with cell connectivity
}

// FaceGeomCmd represents the facegeom command
var FaceGeomCmd = &cobra.Command{
	Use:   "facegeom",
	Short: "Boundary face centroids and characteristic lengths",
	Long:  `Computes the vertex average centroid and minimum edge length of boundary faces, and cell centers when cells are given`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		caseFile, _ := cmd.Flags().GetString("inputConditionsFile")
		fp := &InputParameters.FaceParameters{}
		if err = fp.Parse(readCaseFile(caseFile, exampleFaceFile)); err != nil {
			panic(err)
		}
		fp.Print()
		if _, err = RunFaceGeometry(fp, os.Stdout); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(FaceGeomCmd)
	FaceGeomCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file describing the faces:\n\t- X, Y, Z\n\t- FaceVtx, FaceVtxIdx\n\t- PointList")
}

func RunFaceGeometry(fp *InputParameters.FaceParameters, w io.Writer) (fg *FaceGeometry, err error) {
	fg = &FaceGeometry{}
	if fg.Centroid, fg.Length, err = geometry.ComputeFaceCentroidAndScale(fp.PointList, fp.X, fp.Y, fp.Z,
		fp.FaceVtx, fp.FaceVtxIdx); err != nil {
		return nil, err
	}
	for i, face := range fp.PointList {
		fmt.Fprintf(w, "face %d: center = [%8.5f,%8.5f,%8.5f] length = %8.5f\n",
			face, fg.Centroid[3*i], fg.Centroid[3*i+1], fg.Centroid[3*i+2], fg.Length[i])
	}
	if !fp.HasCells() {
		return
	}
	if fg.CellCenters, err = geometry.ComputeCellCenters(
		geometry.NewCompressed(fp.CellFaceIdx, fp.CellFace),
		geometry.NewCompressed(fp.FaceVtxIdx, fp.FaceVtx),
		fp.X, fp.Y, fp.Z); err != nil {
		return nil, err
	}
	for c := 0; c < len(fg.CellCenters)/3; c++ {
		fmt.Fprintf(w, "cell %d: center = [%8.5f,%8.5f,%8.5f]\n",
			c+1, fg.CellCenters[3*c], fg.CellCenters[3*c+1], fg.CellCenters[3*c+2])
	}
	return
}
