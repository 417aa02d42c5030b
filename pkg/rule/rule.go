// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package rule holds the literal find/replace pairs applied to a target file.
package rule

import (
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

const (
	// TargetTypeKey is the object key whose quoted value gets rewritten
	TargetTypeKey = "targetType"

	// BattlecryTargetType is the enum the quoted values are converted to
	BattlecryTargetType = "BattlecryTargetType"
)

// 🔄 Rule is a single literal replacement
type Rule struct {
	Pattern     string // literal text to find
	Replacement string // literal text to put in its place
}

// String returns a short human form of the rule
func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.Pattern, r.Replacement)
}

// 🏭 EnumValue builds the rule converting `key: "value"` into `key: Enum.VALUE`.
// The member name is the upper-cased value.
func EnumValue(key, enum, value string) Rule {
	return Rule{
		Pattern:     fmt.Sprintf("%s: %q", key, value),
		Replacement: fmt.Sprintf("%s: %s.%s", key, enum, strings.ToUpper(value)),
	}
}

// battlecryTargetValues is the application order of the built-in rules
var battlecryTargetValues = []string{
	"none",
	"any",
	"any_minion",
	"enemy_minion",
	"friendly_minion",
	"enemy_hero",
	"friendly_hero",
	"any_hero",
	"all_minions",
	"all_enemy_minions",
}

// 📚 BattlecryTargetTypes returns the ten built-in rules in application order.
// A fresh slice is returned on every call.
func BattlecryTargetTypes() []Rule {
	rules := make([]Rule, 0, len(battlecryTargetValues))
	for _, v := range battlecryTargetValues {
		rules = append(rules, EnumValue(TargetTypeKey, BattlecryTargetType, v))
	}
	return rules
}

// 🔍 Validate rejects empty and duplicate patterns
func Validate(rules []Rule) error {
	seen := make(map[string]int, len(rules))
	for i, r := range rules {
		if r.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if prev, ok := seen[r.Pattern]; ok {
			return errors.Errorf("rule %d: pattern %q duplicates rule %d", i, r.Pattern, prev)
		}
		seen[r.Pattern] = i
	}
	return nil
}
