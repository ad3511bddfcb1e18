/*
Copyright © 2026 Acronis International GmbH.

Released under MIT license.
*/

package gate_test

import (
	"fmt"
	"time"

	"github.com/acronis/go-limitrate/gate"
)

func Example() {
	var g gate.Gate // One gate per logical operation.
	for i := 0; i < 3; i++ {
		g.Do(time.Minute, func() {
			fmt.Printf("progress report #%d\n", i)
		})
	}
	// Output:
	// progress report #0
}

func ExampleMaybeExecute() {
	g := gate.New()
	for i := 0; i < 3; i++ {
		if sum, ok := gate.MaybeExecute(g, 0, func() int { return i * 10 }); ok {
			fmt.Println(sum)
		}
	}
	// Output:
	// 0
	// 10
	// 20
}

func ExampleKeyedGate() {
	kg, err := gate.NewKeyedGate[string](time.Hour, 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, host := range []string{"db-1", "db-2", "db-1", "db-1", "db-2"} {
		kg.Do(host, func() {
			fmt.Printf("%s is unreachable\n", host)
		})
	}
	// Output:
	// db-1 is unreachable
	// db-2 is unreachable
}
