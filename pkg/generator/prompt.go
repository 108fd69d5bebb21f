package generator

import (
	"fmt"
	"strings"
)

// NameCount is how many usernames each request asks for
const NameCount = 15

// BuildPrompt renders the instruction sent to the model
func BuildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString("You are a creative username generator. ")
	sb.WriteString(fmt.Sprintf("Generate %d unique and cool usernames. ", NameCount))
	sb.WriteString(fmt.Sprintf("The user wants a name based on the seed word '%s' and the category '%s'. ", req.SeedWord, req.Category))
	sb.WriteString(fmt.Sprintf("The seed word must appear %s a word related to the category. ", req.WordPosition))
	sb.WriteString("Include some fun variations using numbers, special characters like underscores, or creative spellings. ")
	sb.WriteString("Ensure the usernames are diverse in style.")
	return sb.String()
}
