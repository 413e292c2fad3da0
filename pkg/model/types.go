package model

import internalmodel "github.com/goliatone/go-propgen/internal/model"

// PropertyKind re-exports the internal PropertyKind enumeration.
type PropertyKind = internalmodel.PropertyKind

const (
	KindBoolean      = internalmodel.KindBoolean
	KindNumber       = internalmodel.KindNumber
	KindText         = internalmodel.KindText
	KindVariant      = internalmodel.KindVariant
	KindExplicit     = internalmodel.KindExplicit
	KindInstanceSwap = internalmodel.KindInstanceSwap
)

// ValueKind re-exports the primitive tag of a Value.
type ValueKind = internalmodel.ValueKind

const (
	ValueString = internalmodel.ValueString
	ValueBool   = internalmodel.ValueBool
	ValueNumber = internalmodel.ValueNumber
)

type Value = internalmodel.Value
type PropertyDefinition = internalmodel.PropertyDefinition
type Definitions = internalmodel.Definitions
type PropertyValue = internalmodel.PropertyValue
type ComponentMeta = internalmodel.ComponentMeta
type Component = internalmodel.Component
type InstanceBinding = internalmodel.InstanceBinding
type PropertyBinding = internalmodel.PropertyBinding
type ReferenceMap = internalmodel.ReferenceMap
type Model = internalmodel.Model

// BoolValue wraps a boolean.
func BoolValue(b bool) Value { return internalmodel.BoolValue(b) }

// NumberValue wraps a number.
func NumberValue(n float64) Value { return internalmodel.NumberValue(n) }

// StringValue wraps a string.
func StringValue(s string) Value { return internalmodel.StringValue(s) }

// InferValue parses s as a boolean, then a number, then keeps it as a string.
func InferValue(s string) Value { return internalmodel.InferValue(s) }

// PropertyName cleans a host property key into a lowerCamelCase identifier.
func PropertyName(key string) string { return internalmodel.PropertyName(key) }

// CapitalizedName cleans a display label into a PascalCase identifier.
func CapitalizedName(name string) string { return internalmodel.CapitalizedName(name) }
