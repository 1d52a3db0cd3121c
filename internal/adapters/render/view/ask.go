package view

import (
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const maxAskLinks = 6

func RenderAnswer(exchange domain.AskExchange) (string, error) {
	return run(func(s styles) string { return answerView(exchange, s) })
}

func answerView(exchange domain.AskExchange, s styles) string {
	answer := exchange.Answer
	if answer == "" {
		answer = "No response."
	}

	lines := []string{
		s.header.Render(fmt.Sprintf("Q: %s · layer %d", exchange.Question, exchange.RoutingLayer)),
		s.detail.Render(answer),
	}
	if len(exchange.Links) > 0 {
		lines = append(lines, s.section.Render(s.title.Render("Links")))
		for i, link := range exchange.Links {
			if i == maxAskLinks {
				break
			}
			lines = append(lines, s.detail.Render(link.Title+": ")+s.link.Render(link.URL))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
