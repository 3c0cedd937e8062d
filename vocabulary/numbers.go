package vocabulary

import "github.com/oraclelex/oraclelex/lexicon"

// numberWords are the cardinal-number words. All surface as NUMBER_WORD;
// the value lookup recovers the quantity.
var numberWords = []lexicon.NumberWord{
	{Word: "zero", Value: 0},
	{Word: "one", Value: 1},
	{Word: "two", Value: 2},
	{Word: "three", Value: 3},
	{Word: "four", Value: 4},
	{Word: "five", Value: 5},
	{Word: "six", Value: 6},
	{Word: "seven", Value: 7},
	{Word: "eight", Value: 8},
	{Word: "nine", Value: 9},
	{Word: "ten", Value: 10},
	{Word: "eleven", Value: 11},
	{Word: "twelve", Value: 12},
	{Word: "thirteen", Value: 13},
	{Word: "fourteen", Value: 14},
	{Word: "fifteen", Value: 15},
	{Word: "sixteen", Value: 16},
	{Word: "seventeen", Value: 17},
	{Word: "eighteen", Value: 18},
	{Word: "nineteen", Value: 19},
	{Word: "twenty", Value: 20},
}

// ordinalWords surface as ORDINAL_WORD. "last" ranks OrdinalLast.
var ordinalWords = []lexicon.OrdinalWord{
	{Word: "first", Rank: 1},
	{Word: "second", Rank: 2},
	{Word: "third", Rank: 3},
	{Word: "fourth", Rank: 4},
	{Word: "last", Rank: lexicon.OrdinalLast},
}
