package dto

type Category string

const (
	CategoryWorkQuotes  Category = "work_quotes"
	CategoryBreakQuotes Category = "break_quotes"
	CategoryStretches   Category = "stretches"
	CategoryFunFacts    Category = "fun_facts"
)

type QuotesOutput struct {
	Source string
	Custom bool
	Work   []string
	Break  []string
}
