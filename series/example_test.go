package series_test

import (
	"fmt"

	"github.com/cwbudde/algo-cycle/series"
)

func ExampleFrame() {
	frame, err := series.NewFrame(map[string][]float64{
		"close":  {10, 11, 12, 11},
		"volume": {100, 90, 120, 80},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	closeCol, err := frame.Column("close")
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(frame.RowCount(), closeCol[2])

	_, err = frame.Column("open")
	fmt.Println(err)
	// Output:
	// 4 12
	// series: column not found: "open"
}
