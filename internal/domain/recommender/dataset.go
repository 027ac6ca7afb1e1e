package recommender

// CreateDummyData returns the fixed nine-row interaction table.
// Every call returns a fresh slice.
func CreateDummyData() []InteractionRecord {
	return []InteractionRecord{
		{UserID: 1, ItemID: 1, InteractionType: InteractionView, Subject: "python", Level: LevelBeginner},
		{UserID: 1, ItemID: 2, InteractionType: InteractionView, Subject: "python", Level: LevelBeginner},
		{UserID: 1, ItemID: 3, InteractionType: InteractionComplete, Subject: "python", Level: LevelBeginner},
		{UserID: 2, ItemID: 1, InteractionType: InteractionView, Subject: "python", Level: LevelBeginner},
		{UserID: 2, ItemID: 4, InteractionType: InteractionView, Subject: "java", Level: LevelIntermediate},
		{UserID: 3, ItemID: 2, InteractionType: InteractionView, Subject: "python", Level: LevelBeginner},
		{UserID: 3, ItemID: 3, InteractionType: InteractionComplete, Subject: "python", Level: LevelBeginner},
		{UserID: 3, ItemID: 4, InteractionType: InteractionView, Subject: "java", Level: LevelIntermediate},
		{UserID: 3, ItemID: 5, InteractionType: InteractionView, Subject: "c++", Level: LevelAdvanced},
	}
}
