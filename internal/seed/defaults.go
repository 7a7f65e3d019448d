package seed

import "github.com/ssantos/wordkids/internal/catalog"

// defaultItems is the built-in starter vocabulary, six words per
// category so every category can fill a memory board.
var defaultItems = []catalog.LearningItem{
	{Category: catalog.CategoryColors, EnglishWord: "red", PortugueseWord: "vermelho", ImageURL: "https://img.wordkids.app/colors/red.png", OrderIndex: 1},
	{Category: catalog.CategoryColors, EnglishWord: "blue", PortugueseWord: "azul", ImageURL: "https://img.wordkids.app/colors/blue.png", OrderIndex: 2},
	{Category: catalog.CategoryColors, EnglishWord: "green", PortugueseWord: "verde", ImageURL: "https://img.wordkids.app/colors/green.png", OrderIndex: 3},
	{Category: catalog.CategoryColors, EnglishWord: "yellow", PortugueseWord: "amarelo", ImageURL: "https://img.wordkids.app/colors/yellow.png", OrderIndex: 4},
	{Category: catalog.CategoryColors, EnglishWord: "purple", PortugueseWord: "roxo", ImageURL: "https://img.wordkids.app/colors/purple.png", OrderIndex: 5},
	{Category: catalog.CategoryColors, EnglishWord: "orange", PortugueseWord: "laranja", ImageURL: "https://img.wordkids.app/colors/orange.png", OrderIndex: 6},

	{Category: catalog.CategoryNumbers, EnglishWord: "one", PortugueseWord: "um", ImageURL: "https://img.wordkids.app/numbers/one.png", OrderIndex: 1},
	{Category: catalog.CategoryNumbers, EnglishWord: "two", PortugueseWord: "dois", ImageURL: "https://img.wordkids.app/numbers/two.png", OrderIndex: 2},
	{Category: catalog.CategoryNumbers, EnglishWord: "three", PortugueseWord: "três", ImageURL: "https://img.wordkids.app/numbers/three.png", OrderIndex: 3},
	{Category: catalog.CategoryNumbers, EnglishWord: "four", PortugueseWord: "quatro", ImageURL: "https://img.wordkids.app/numbers/four.png", OrderIndex: 4},
	{Category: catalog.CategoryNumbers, EnglishWord: "five", PortugueseWord: "cinco", ImageURL: "https://img.wordkids.app/numbers/five.png", OrderIndex: 5},
	{Category: catalog.CategoryNumbers, EnglishWord: "six", PortugueseWord: "seis", ImageURL: "https://img.wordkids.app/numbers/six.png", OrderIndex: 6},

	{Category: catalog.CategoryAnimals, EnglishWord: "dog", PortugueseWord: "cachorro", ImageURL: "https://img.wordkids.app/animals/dog.png", OrderIndex: 1},
	{Category: catalog.CategoryAnimals, EnglishWord: "cat", PortugueseWord: "gato", ImageURL: "https://img.wordkids.app/animals/cat.png", OrderIndex: 2},
	{Category: catalog.CategoryAnimals, EnglishWord: "bird", PortugueseWord: "pássaro", ImageURL: "https://img.wordkids.app/animals/bird.png", OrderIndex: 3},
	{Category: catalog.CategoryAnimals, EnglishWord: "fish", PortugueseWord: "peixe", ImageURL: "https://img.wordkids.app/animals/fish.png", OrderIndex: 4},
	{Category: catalog.CategoryAnimals, EnglishWord: "lion", PortugueseWord: "leão", ImageURL: "https://img.wordkids.app/animals/lion.png", OrderIndex: 5},
	{Category: catalog.CategoryAnimals, EnglishWord: "elephant", PortugueseWord: "elefante", ImageURL: "https://img.wordkids.app/animals/elephant.png", OrderIndex: 6},

	{Category: catalog.CategoryFruits, EnglishWord: "apple", PortugueseWord: "maçã", ImageURL: "https://img.wordkids.app/fruits/apple.png", OrderIndex: 1},
	{Category: catalog.CategoryFruits, EnglishWord: "banana", PortugueseWord: "banana", ImageURL: "https://img.wordkids.app/fruits/banana.png", OrderIndex: 2},
	{Category: catalog.CategoryFruits, EnglishWord: "orange", PortugueseWord: "laranja", ImageURL: "https://img.wordkids.app/fruits/orange.png", OrderIndex: 3},
	{Category: catalog.CategoryFruits, EnglishWord: "grape", PortugueseWord: "uva", ImageURL: "https://img.wordkids.app/fruits/grape.png", OrderIndex: 4},
	{Category: catalog.CategoryFruits, EnglishWord: "strawberry", PortugueseWord: "morango", ImageURL: "https://img.wordkids.app/fruits/strawberry.png", OrderIndex: 5},
	{Category: catalog.CategoryFruits, EnglishWord: "mango", PortugueseWord: "manga", ImageURL: "https://img.wordkids.app/fruits/mango.png", OrderIndex: 6},
}

// DefaultItems returns a copy of the built-in vocabulary.
func DefaultItems() []catalog.LearningItem {
	out := make([]catalog.LearningItem, len(defaultItems))
	copy(out, defaultItems)
	return out
}
