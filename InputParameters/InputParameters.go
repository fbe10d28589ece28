package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Join case obtained from the YAML input file, laid out as the host buffers
type JoinParameters struct {
	Title          string     `json:"Title"`
	NeighborIndex  []int32    `json:"NeighborIndex"` // Optional, defaults to one key per entry
	NeighborKeys   [][3]int32 `json:"NeighborKeys"`  // (process, partition, entity) per entry
	Stride         []int32    `json:"Stride"`        // Optional, defaults to all ones
	PointList      []int32    `json:"PointList"`
	PointListDonor []int32    `json:"PointListDonor"`
}

func (jp *JoinParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, jp)
}

// Buffers returns the flat host buffers of the join, filling in the optional
// index and stride arrays.
func (jp *JoinParameters) Buffers() (neighborIndex, neighborKey, stride []int32) {
	var (
		n = len(jp.NeighborKeys)
	)
	neighborKey = make([]int32, 0, 3*n)
	for _, key := range jp.NeighborKeys {
		neighborKey = append(neighborKey, key[:]...)
	}
	if neighborIndex = jp.NeighborIndex; neighborIndex == nil {
		neighborIndex = make([]int32, n+1)
		for i := range neighborIndex {
			neighborIndex[i] = int32(i)
		}
	}
	if stride = jp.Stride; stride == nil {
		stride = make([]int32, n)
		for i := range stride {
			stride[i] = 1
		}
	}
	return
}

func (jp *JoinParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", jp.Title)
	fmt.Printf("[%d]\t\t\t= Join Size\n", len(jp.PointList))
	for i := range jp.PointList {
		var key [3]int32
		if i < len(jp.NeighborKeys) {
			key = jp.NeighborKeys[i]
		}
		fmt.Printf("pl = %d | pld = %d | key = %d/%d/%d\n",
			jp.PointList[i], at(jp.PointListDonor, i), key[0], key[1], key[2])
	}
}

// Boundary face case obtained from the YAML input file
type FaceParameters struct {
	Title       string    `json:"Title"`
	PointList   []int32   `json:"PointList"` // 1 based face ids
	X           []float64 `json:"X"`
	Y           []float64 `json:"Y"`
	Z           []float64 `json:"Z"`
	FaceVtx     []int32   `json:"FaceVtx"`    // 1 based vertex ids
	FaceVtxIdx  []int32   `json:"FaceVtxIdx"` // n_faces+1 offsets into FaceVtx
	CellFace    []int32   `json:"CellFace"`   // Optional NFace connectivity
	CellFaceIdx []int32   `json:"CellFaceIdx"`
}

func (fp *FaceParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, fp)
}

func (fp *FaceParameters) HasCells() bool {
	return len(fp.CellFaceIdx) > 1
}

func (fp *FaceParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", fp.Title)
	fmt.Printf("[%d]\t\t\t= Vertices\n", len(fp.X))
	fmt.Printf("[%d]\t\t\t= Faces\n", max(len(fp.FaceVtxIdx)-1, 0))
	fmt.Printf("[%d]\t\t\t= Boundary Faces\n", len(fp.PointList))
	if fp.HasCells() {
		fmt.Printf("[%d]\t\t\t= Cells\n", len(fp.CellFaceIdx)-1)
	}
}

func at(s []int32, i int) int32 {
	if i < len(s) {
		return s[i]
	}
	return 0
}
