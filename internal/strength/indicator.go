package strength

// SlotCount is the number of indicator slots a field renders.
const SlotCount = 3

// Slot is one indicator region. Level names the band the slot stands for.
type Slot struct {
	Level  Level
	Active bool
}

var slotLevels = [SlotCount]Level{Weak, Medium, Strong}

// Indicators returns the Weak, Medium and Strong slots for level. A slot is
// active when level has reached it; None leaves every slot inactive.
func Indicators(level Level) [SlotCount]Slot {
	var out [SlotCount]Slot
	for i, sl := range slotLevels {
		out[i] = Slot{Level: sl, Active: level != None && sl <= level}
	}
	return out
}

// ActiveSlots counts the active slots for level.
func ActiveSlots(level Level) int {
	n := 0
	for _, s := range Indicators(level) {
		if s.Active {
			n++
		}
	}
	return n
}
