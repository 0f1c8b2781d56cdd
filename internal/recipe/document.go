package recipe

import (
	"encoding/json"
	"fmt"
	"io"
)

// SymbolRef is the on-the-wire reference to a vocabulary term: the relational
// id of the canonical row plus the raw name (canonical form or alias).
type SymbolRef struct {
	ID   int    `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// MeasurementDoc carries the raw fields of a measurement union. Field
// presence, not zero values, selects the variant.
type MeasurementDoc struct {
	Value    *float64   `json:"value,omitempty" bson:"value,omitempty"`
	ValueMin *float64   `json:"valueMin,omitempty" bson:"valueMin,omitempty"`
	ValueMax *float64   `json:"valueMax,omitempty" bson:"valueMax,omitempty"`
	Unit     *SymbolRef `json:"unit,omitempty" bson:"unit,omitempty"`
}

// TemperatureDoc carries the raw fields of a temperature union.
type TemperatureDoc struct {
	Value    *float64   `json:"value,omitempty" bson:"value,omitempty"`
	ValueMin *float64   `json:"valueMin,omitempty" bson:"valueMin,omitempty"`
	ValueMax *float64   `json:"valueMax,omitempty" bson:"valueMax,omitempty"`
	Unit     *SymbolRef `json:"unit,omitempty" bson:"unit,omitempty"`
	Level    *SymbolRef `json:"level,omitempty" bson:"level,omitempty"`
}

// DurationDoc carries the raw fields of a duration union.
type DurationDoc struct {
	Value    *float64   `json:"value,omitempty" bson:"value,omitempty"`
	ValueMin *float64   `json:"valueMin,omitempty" bson:"valueMin,omitempty"`
	ValueMax *float64   `json:"valueMax,omitempty" bson:"valueMax,omitempty"`
	Unit     *SymbolRef `json:"unit,omitempty" bson:"unit,omitempty"`
}

// DimensionsDoc carries the raw fields of a dimensions union.
type DimensionsDoc struct {
	Values    []float64  `json:"values,omitempty" bson:"values,omitempty"`
	ValuesMin []float64  `json:"valuesMin,omitempty" bson:"valuesMin,omitempty"`
	ValuesMax []float64  `json:"valuesMax,omitempty" bson:"valuesMax,omitempty"`
	Unit      *SymbolRef `json:"unit,omitempty" bson:"unit,omitempty"`
}

// ItemDoc is the wire form of an item in the recipe's item pool. Intermediate
// kinds additionally carry production provenance.
type ItemDoc struct {
	ID          string         `json:"id" bson:"id"`
	Kind        string         `json:"kind" bson:"kind"`
	Name        string         `json:"name" bson:"name"`
	Identity    []SymbolRef    `json:"identity" bson:"identity"`
	State       []SymbolRef    `json:"state,omitempty" bson:"state,omitempty"`
	Preparation []SymbolRef    `json:"preparation,omitempty" bson:"preparation,omitempty"`
	Size        *SymbolRef     `json:"size,omitempty" bson:"size,omitempty"`
	Dimensions  *DimensionsDoc `json:"dimensions,omitempty" bson:"dimensions,omitempty"`

	ProducedByInstructionID *int     `json:"producedByInstructionId,omitempty" bson:"producedByInstructionId,omitempty"`
	SourceIngredientIDs     []string `json:"sourceIngredientIds,omitempty" bson:"sourceIngredientIds,omitempty"`
	SourceEquipmentIDs      []string `json:"sourceEquipmentIds,omitempty" bson:"sourceEquipmentIds,omitempty"`
	VesselItemID            string   `json:"vesselItemId,omitempty" bson:"vesselItemId,omitempty"`
}

// IngredientUsageDoc describes how an instruction uses one ingredient.
type IngredientUsageDoc struct {
	ItemID     string          `json:"itemId" bson:"itemId"`
	Count      *int            `json:"count,omitempty" bson:"count,omitempty"`
	Proportion *float64        `json:"proportion,omitempty" bson:"proportion,omitempty"`
	Quantity   *MeasurementDoc `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Optional   bool            `json:"optional,omitempty" bson:"optional,omitempty"`
}

// EquipmentUsageDoc describes how an instruction uses one piece of equipment.
type EquipmentUsageDoc struct {
	ItemID string `json:"itemId" bson:"itemId"`
	Count  *int   `json:"count,omitempty" bson:"count,omitempty"`
}

// InstructionDoc is the wire form of a single production step.
type InstructionDoc struct {
	ID             int                  `json:"id" bson:"id"`
	Action         SymbolRef            `json:"action" bson:"action"`
	Description    string               `json:"description,omitempty" bson:"description,omitempty"`
	Ingredients    []IngredientUsageDoc `json:"ingredients" bson:"ingredients"`
	Equipment      []EquipmentUsageDoc  `json:"equipment" bson:"equipment"`
	Duration       *DurationDoc         `json:"duration,omitempty" bson:"duration,omitempty"`
	Temperature    *TemperatureDoc      `json:"temperature,omitempty" bson:"temperature,omitempty"`
	ProducesItemID *string              `json:"producesItemId,omitempty" bson:"producesItemId,omitempty"`
	SequenceOrder  *float64             `json:"sequenceOrder,omitempty" bson:"sequenceOrder,omitempty"`

	NextInstructionIDs         []int `json:"nextInstructionIds" bson:"nextInstructionIds"`
	PrerequisiteInstructionIDs []int `json:"prerequisiteInstructionIds" bson:"prerequisiteInstructionIds"`
}

// Document is the complete on-the-wire recipe, as persisted in the document
// store. ObjectID is the opaque 24-character document-store key; ID is the
// relational pointer row.
type Document struct {
	ID                 int              `json:"id" bson:"id"`
	ObjectID           string           `json:"objectId,omitempty" bson:"objectId,omitempty"`
	Title              string           `json:"title" bson:"title"`
	Items              []ItemDoc        `json:"items" bson:"items"`
	Instructions       []InstructionDoc `json:"instructions" bson:"instructions"`
	RootInstructionIDs []int            `json:"rootInstructionIds" bson:"rootInstructionIds"`
}

// DecodeDocument reads a single JSON recipe document. Decoding is strict:
// unknown fields are rejected, matching the schema's
// additionalProperties:false constraints.
func DecodeDocument(r io.Reader) (*Document, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode recipe document: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to decode recipe document: trailing data after document")
	}
	return &doc, nil
}
