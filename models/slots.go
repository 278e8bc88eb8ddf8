package models

// TimeSlot is one fixed booking window of the gym day.
type TimeSlot struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"startTime"` // "15:04"
	EndTime   string `json:"endTime"`
}

// TimeSlots is the daily catalog, ordered by start time. Ids are stable across days.
var TimeSlots = []TimeSlot{
	{ID: "1", Label: "9:30 - 10:30", StartTime: "09:30", EndTime: "10:30"},
	{ID: "2", Label: "10:30 - 11:30", StartTime: "10:30", EndTime: "11:30"},
	{ID: "3", Label: "11:30 - 12:30", StartTime: "11:30", EndTime: "12:30"},
	{ID: "4", Label: "12:30 - 13:30", StartTime: "12:30", EndTime: "13:30"},
	{ID: "5", Label: "13:30 - 14:30", StartTime: "13:30", EndTime: "14:30"},
	{ID: "6", Label: "14:30 - 15:30", StartTime: "14:30", EndTime: "15:30"},
	{ID: "7", Label: "15:30 - 16:30", StartTime: "15:30", EndTime: "16:30"},
	{ID: "8", Label: "16:30 - 17:30", StartTime: "16:30", EndTime: "17:30"},
	{ID: "9", Label: "17:30 - 18:30", StartTime: "17:30", EndTime: "18:30"},
	{ID: "10", Label: "18:30 - 19:30", StartTime: "18:30", EndTime: "19:30"},
	{ID: "11", Label: "19:30 - 20:30", StartTime: "19:30", EndTime: "20:30"},
}

// SlotByID looks up a catalog slot.
func SlotByID(id string) (TimeSlot, bool) {
	for _, s := range TimeSlots {
		if s.ID == id {
			return s, true
		}
	}
	return TimeSlot{}, false
}

// slotIndex is the catalog position of id, or len(TimeSlots) when unknown.
func slotIndex(id string) int {
	for i, s := range TimeSlots {
		if s.ID == id {
			return i
		}
	}
	return len(TimeSlots)
}
