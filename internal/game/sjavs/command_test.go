package sjavs

import (
	"errors"
	"reflect"
	"testing"

	"sjavs-go/internal/game/common"
)

func TestParseLine(t *testing.T) {
	three := 3
	tests := []struct {
		line string
		want Command
	}{
		{"M 7", MeldCommand{N: 7}},
		{"M 0", MeldCommand{N: 0}},
		{"S C", SuitCommand{Suit: common.Clubs}},
		{"S h", SuitCommand{Suit: common.Hearts}},
		{"split 12", DealCommand{Pos: 12}},
		{"banka", DealCommand{Banka: true}},
		{"P AH", PlayCommand{Card: common.Card{Rank: common.Ace, Suit: common.Hearts}}},
		{"  P  tc ", PlayCommand{Card: common.Card{Rank: common.Ten, Suit: common.Clubs}}},
		{"GU", UpdatesCommand{}},
		{"show", ShowCommand{}},
		{"maxmeld", MaxMeldCommand{}},
		{"bots", BotsCommand{}},
		{"bots 3", BotsCommand{Requested: &three}},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			got, err := ParseLine(tc.line)
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", tc.line, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseLine(%q) = %#v, want %#v", tc.line, got, tc.want)
			}
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrUnknownCommand},
		{"quux", ErrUnknownCommand},
		{"M", ErrInvalidDeclaration},
		{"M x", ErrInvalidDeclaration},
		{"M -1", ErrInvalidDeclaration},
		{"S", ErrInvalidSuitChoice},
		{"S X", ErrInvalidSuitChoice},
		{"split", ErrInvalidDealChoice},
		{"split x", ErrInvalidDealChoice},
		{"banka now", ErrInvalidDealChoice},
		{"P", ErrCardNotHeld},
		{"P ZZ", ErrCardNotHeld},
		{"bots 9", ErrUnknownCommand},
		{"bots -1", ErrUnknownCommand},
	}

	for _, tc := range tests {
		t.Run(tc.line, func(t *testing.T) {
			if _, err := ParseLine(tc.line); !errors.Is(err, tc.want) {
				t.Fatalf("ParseLine(%q) error = %v, want %v", tc.line, err, tc.want)
			}
		})
	}
}
