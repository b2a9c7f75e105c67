package main

import "hedgemaze/internal/game"

func main() {
	game.RunDesktop()
}
