// Command shapectl prints, measures and exports tcanvas shapes.
package main

func main() {
	Execute()
}
