package models

import (
	"encoding/json"
	"fmt"
)

// CardType discriminates the two kinds of flashcard
type CardType string

const (
	CardTypeWord   CardType = "word"
	CardTypePhrase CardType = "phrase"
)

// Card is one flashcard: either a vocabulary word or a phrase. Exactly one of
// Word/Phrase is set, matching Type. Cards are immutable once generated.
type Card struct {
	Type   CardType
	Word   *Word
	Phrase *Phrase
}

// WordCard wraps a word as a card
func WordCard(w Word) Card {
	return Card{Type: CardTypeWord, Word: &w}
}

// PhraseCard wraps a phrase as a card
func PhraseCard(p Phrase) Card {
	return Card{Type: CardTypePhrase, Phrase: &p}
}

// CardID returns the identity of the underlying word or phrase. Ids are
// unique within a lesson's deck, not globally.
func (c Card) CardID() string {
	switch c.Type {
	case CardTypeWord:
		if c.Word != nil {
			return c.Word.ID
		}
	case CardTypePhrase:
		if c.Phrase != nil {
			return c.Phrase.ID
		}
	}
	return ""
}

// cardEnvelope is the wire shape shared with the cache and the remote store:
// a tagged union of {"type": ..., "data": ...}
type cardEnvelope struct {
	Type CardType        `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON encodes the card as its tagged-union envelope
func (c Card) MarshalJSON() ([]byte, error) {
	var data interface{}
	switch c.Type {
	case CardTypeWord:
		data = c.Word
	case CardTypePhrase:
		data = c.Phrase
	default:
		return nil, fmt.Errorf("unknown card type %q", c.Type)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(cardEnvelope{Type: c.Type, Data: raw})
}

// UnmarshalJSON decodes a tagged-union envelope back into a card
func (c *Card) UnmarshalJSON(b []byte) error {
	var env cardEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	switch env.Type {
	case CardTypeWord:
		var w Word
		if err := json.Unmarshal(env.Data, &w); err != nil {
			return err
		}
		*c = Card{Type: CardTypeWord, Word: &w}
	case CardTypePhrase:
		var p Phrase
		if err := json.Unmarshal(env.Data, &p); err != nil {
			return err
		}
		*c = Card{Type: CardTypePhrase, Phrase: &p}
	default:
		return fmt.Errorf("unknown card type %q", env.Type)
	}
	return nil
}
