// Package anim drives the diagrams: a state value advanced once per tick
// and handed to a render function.
//
//   - [Driver]: owns one state value, advances it with Update, renders it
//   - [Host]: steps any number of drivers on a fixed cadence
//   - [Observer]: notified after every tick
//
// # Example
//
//	d, _ := anim.New(anim.Config[int, int]{
//		Initial: 0,
//		Update:  func(s int) int { return s + 1 },
//		Render:  func(s int) int { return s },
//	})
//	out, _ := d.Tick() // out == 1
//
// # Thread Safety
//
// A Driver is NOT safe for concurrent use. Each driver owns its state
// exclusively; drivers never share state, so distinct drivers may run on
// distinct goroutines.
package anim
