package questions

import "github.com/obedfeni/dailytrivia/internal/model"

// defaultBank is the compiled-in question set, used unless a bank file is
// loaded. Content is game data, not player data: it is immutable at runtime.
func defaultBank() []model.Question {
	return []model.Question{
		{ID: "science-1", Category: "Science & STEM", Prompt: "What is H2O commonly known as?", Kind: model.QuestionMultipleChoice, Options: []string{"Water", "Oxygen", "Hydrogen", "Salt"}, Answer: "Water"},
		{ID: "science-2", Category: "Science & STEM", Prompt: "Which planet is known as the Red Planet?", Kind: model.QuestionMultipleChoice, Options: []string{"Earth", "Mars", "Venus", "Jupiter"}, Answer: "Mars"},
		{ID: "science-3", Category: "Science & STEM", Prompt: "Who invented the light bulb?", Kind: model.QuestionMultipleChoice, Options: []string{"Edison", "Newton", "Tesla", "Einstein"}, Answer: "Edison"},
		{ID: "science-4", Category: "Science & STEM", Prompt: "The speed of light is approximately...", Kind: model.QuestionMultipleChoice, Options: []string{"3,000 km/s", "30,000 km/s", "300,000 km/s", "3,000,000 km/s"}, Answer: "300,000 km/s"},

		{ID: "history-1", Category: "History & Arts", Prompt: "Who painted the Mona Lisa?", Kind: model.QuestionMultipleChoice, Options: []string{"Picasso", "Da Vinci", "Van Gogh", "Rembrandt"}, Answer: "Da Vinci"},
		{ID: "history-2", Category: "History & Arts", Prompt: "The Great Pyramid of Giza is in which country?", Kind: model.QuestionMultipleChoice, Options: []string{"Egypt", "Sudan", "Mexico", "India"}, Answer: "Egypt"},
		{ID: "history-3", Category: "History & Arts", Prompt: "Which empire built the Colosseum?", Kind: model.QuestionMultipleChoice, Options: []string{"Greek", "Roman", "Ottoman", "Byzantine"}, Answer: "Roman"},

		{ID: "geography-1", Category: "Geography", Prompt: "What is the capital of France?", Kind: model.QuestionFreeText, Answer: "Paris"},
		{ID: "geography-2", Category: "Geography", Prompt: "Which continent is Ghana part of?", Kind: model.QuestionFreeText, Answer: "Africa"},
		{ID: "geography-3", Category: "Geography", Prompt: "What is the longest river in the world?", Kind: model.QuestionFreeText, Answer: "Nile"},

		// Unscored prompts: no answer, always a neutral outcome.
		{ID: "fun-1", Category: "Just For Fun", Prompt: "Pineapple on pizza?", Kind: model.QuestionMultipleChoice, Options: []string{"Always", "Never", "Sometimes"}},
		{ID: "fun-2", Category: "Just For Fun", Prompt: "Which do you open first in the morning?", Kind: model.QuestionFreeText},
	}
}

// defaultWords is the compiled-in word pool backing the generated word-hint
// puzzle category.
func defaultWords() []model.WordHint {
	return []model.WordHint{
		{Word: "PYTHON", Hint: "A popular programming language"},
		{Word: "CAMERA", Hint: "Used for photography"},
		{Word: "AFRICA", Hint: "Second largest continent"},
		{Word: "PLANET", Hint: "Orbits around a star"},
		{Word: "RIVER", Hint: "Flows into oceans or lakes"},
		{Word: "MUSIC", Hint: "Universal language of sound"},
		{Word: "OCEAN", Hint: "Covers most of Earth"},
		{Word: "CLOUD", Hint: "Floats in the sky"},
		{Word: "TREE", Hint: "Has leaves and gives shade"},
		{Word: "BOOK", Hint: "Made of pages and words"},
		{Word: "LIGHT", Hint: "Opposite of darkness"},
		{Word: "FIRE", Hint: "Provides heat, can burn"},
		{Word: "WATER", Hint: "Essential for life"},
		{Word: "BRAIN", Hint: "Controls the body"},
		{Word: "HEART", Hint: "Pumps blood"},
		{Word: "PHONE", Hint: "Used to call people"},
		{Word: "TRAIN", Hint: "Runs on tracks"},
		{Word: "CAR", Hint: "Has four wheels"},
		{Word: "HOUSE", Hint: "Where people live"},
		{Word: "SUN", Hint: "Star at the center of the solar system"},
		{Word: "MOON", Hint: "Earth's natural satellite"},
		{Word: "STAR", Hint: "Shines in the night sky"},
		{Word: "ROAD", Hint: "Where cars drive"},
		{Word: "SHIP", Hint: "Travels on water"},
		{Word: "CLOCK", Hint: "Tells time"},
		{Word: "MAP", Hint: "Shows directions"},
		{Word: "KEY", Hint: "Opens locks"},
		{Word: "CHAIR", Hint: "You sit on it"},
		{Word: "TABLE", Hint: "You eat on it"},
		{Word: "PEN", Hint: "Used for writing"},
		{Word: "PAPER", Hint: "You write on it"},
		{Word: "LION", Hint: "King of the jungle"},
		{Word: "DOG", Hint: "Man's best friend"},
		{Word: "CAT", Hint: "Likes to chase mice"},
		{Word: "HORSE", Hint: "Fast running animal"},
		{Word: "BIRD", Hint: "Has wings"},
		{Word: "FISH", Hint: "Lives in water"},
		{Word: "EGG", Hint: "Laid by chickens"},
		{Word: "MILK", Hint: "Comes from cows"},
		{Word: "CHEESE", Hint: "Made from milk"},
		{Word: "BREAD", Hint: "Staple food"},
		{Word: "APPLE", Hint: "Keeps the doctor away"},
		{Word: "ORANGE", Hint: "Citrus fruit"},
		{Word: "BANANA", Hint: "Long yellow fruit"},
		{Word: "MANGO", Hint: "Sweet tropical fruit"},
		{Word: "GRAPE", Hint: "Can be made into wine"},
		{Word: "PEAR", Hint: "Shaped like a bell"},
		{Word: "PEACH", Hint: "Fuzzy fruit"},
	}
}
