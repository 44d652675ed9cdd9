// Copyright (c) 2025 PawGuide Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Shivammaurya1/PawGuide-Chatbot/internal/model"
)

// HandlePet lists, adds, or removes pet profiles.
func HandlePet(args Args) error {
	env, err := Setup(args.Verbose)
	if err != nil {
		return err
	}
	defer env.Close()

	switch args.Subcommand {
	case "", "list":
		return listPets(env)
	case "add":
		return addPet(env, args.Raw)
	case "remove", "rm", "delete":
		return removePet(env, args.Raw)
	default:
		return fmt.Errorf("unknown pet subcommand %q (use list, add, or remove)", args.Subcommand)
	}
}

func listPets(env *Env) error {
	profiles := env.Store.Profiles.List()
	if len(profiles) == 0 {
		fmt.Println("No pet profiles yet. Add one with: pawguide pet add --name Rex --type Dog")
		return nil
	}
	for i, p := range profiles {
		line := fmt.Sprintf("%2d. %s (%s)", i+1, p.Name, p.Type)
		if p.Breed != "" {
			line += ", " + p.Breed
		}
		if p.Age != "" {
			line += ", age " + p.Age
		}
		fmt.Println(line)
		if p.Notes != "" {
			fmt.Println("    " + p.Notes)
		}
	}
	return nil
}

func addPet(env *Env, raw []string) error {
	fields := map[string]string{}
	for i := 0; i < len(raw); i++ {
		if !strings.HasPrefix(raw[i], "--") {
			return fmt.Errorf("unexpected argument %q", raw[i])
		}
		key := strings.TrimPrefix(raw[i], "--")
		if i+1 >= len(raw) {
			return fmt.Errorf("flag --%s needs a value", key)
		}
		fields[key] = raw[i+1]
		i++
	}

	if fields["name"] == "" || fields["type"] == "" {
		return fmt.Errorf("usage: pawguide pet add --name NAME --type TYPE [--breed BREED] [--age AGE] [--weight WEIGHT] [--notes NOTES]")
	}

	p := model.NewPetProfile(
		fields["name"], fields["type"], fields["breed"],
		fields["age"], fields["weight"], fields["notes"],
	)
	if err := env.Store.Profiles.Save(p); err != nil {
		return err
	}
	fmt.Printf("Added %s (%s)\n", p.Name, p.Type)
	return nil
}

func removePet(env *Env, raw []string) error {
	if len(raw) == 0 {
		return fmt.Errorf("a pet number is required (see: pawguide pet list)")
	}
	n, err := strconv.Atoi(raw[0])
	if err != nil {
		return fmt.Errorf("invalid pet number %q", raw[0])
	}
	profiles := env.Store.Profiles.List()
	if n < 1 || n > len(profiles) {
		return fmt.Errorf("pet number %d out of range (1-%d)", n, len(profiles))
	}
	p := profiles[n-1]
	if err := env.Store.Profiles.Delete(p.ID); err != nil {
		return err
	}
	fmt.Printf("Removed %s\n", p.Name)
	return nil
}
