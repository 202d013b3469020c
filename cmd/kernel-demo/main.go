package main

import (
	"flag"
	"fmt"
	"log"
	"sync"

	"kernel"
)

type Player struct {
	ID   uint64
	HP   uint32
	MP   uint32
	Name [32]byte
}

func main() {
	count := flag.Int("n", 100, "players per block")
	pause := flag.Uint("sleep", 1, "seconds to sleep between rounds (0-255)")
	flag.Parse()
	if *pause > 255 {
		log.Fatalf("sleep out of range: %d", *pause)
	}

	var wg sync.WaitGroup
	fill := func(prefix string) {
		defer wg.Done()
		blk := kernel.Alloc[Player](*count)
		if blk == nil {
			log.Printf("%s: alloc failed", prefix)
			return
		}
		defer blk.Release()
		players := blk.Items()
		for i := range players {
			players[i] = Player{ID: uint64(i), HP: uint32(i), MP: uint32(i)}
			copy(players[i].Name[:], fmt.Sprintf("%s%d", prefix, i))
		}
		last := players[len(players)-1]
		fmt.Println(prefix, blk.Mapped(), last.ID, last.HP, string(last.Name[:]))
	}
	wg.Add(2)
	go fill("player")
	go fill("master")
	wg.Wait()

	start := kernel.Now()
	kernel.Sleep(uint8(*pause))
	end := kernel.Now()
	log.Printf("now=%d slept=%ds", end, end-start)

	st := kernel.Stats()
	log.Printf("allocs=%d frees=%d live=%d liveBytes=%d mapped=%d",
		st.Allocs, st.Frees, st.LiveBlocks, st.LiveBytes, st.MappedBytes)
}
