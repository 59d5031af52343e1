package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/greenpath/internal/client/models"
	"github.com/dmitrijs2005/greenpath/internal/locations"
)

// chooseOption is a test seam for ChooseOption.
var chooseOption = ChooseOption

// Location walks the user through country, state, city and living type,
// then saves. Picking a different country clears state and city; picking a
// different state clears city.
func (a *App) Location(ctx context.Context) error {
	form, err := a.profileService.NewLocationForm(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	needsSetup, err := a.profileService.NeedsSetup(ctx)
	if err != nil {
		return a.report(ctx, err)
	}

	sel := form.Selection()
	country, err := chooseOption(a.reader, a.out, "Country", locations.Countries(), sel.Country)
	if err != nil {
		return err
	}
	if country != sel.Country {
		form.SetCountry(country)
	}

	sel = form.Selection()
	state, err := chooseOption(a.reader, a.out, "State", form.AvailableStates(), sel.State)
	if err != nil {
		return err
	}
	if state != sel.State {
		if err := form.SetState(state); err != nil && !errors.Is(err, locations.ErrParentUnset) {
			return err
		}
	}

	sel = form.Selection()
	city, err := chooseOption(a.reader, a.out, "City", form.AvailableCities(), sel.City)
	if err != nil {
		return err
	}
	if city != sel.City {
		if err := form.SetCity(city); err != nil && !errors.Is(err, locations.ErrParentUnset) {
			return err
		}
	}

	labels := make([]string, len(models.LivingTypes))
	current := ""
	for i, lt := range models.LivingTypes {
		labels[i] = lt.Label()
		if lt == form.LivingType {
			current = labels[i]
		}
	}
	living, err := chooseOption(a.reader, a.out, "Living type", labels, current)
	if err != nil {
		return err
	}
	form.LivingType = models.LivingType(living)
	for i, label := range labels {
		if label == living {
			form.LivingType = models.LivingTypes[i]
		}
	}

	var p *models.UserProfile
	if needsSetup {
		p, err = a.profileService.Setup(ctx, form)
	} else {
		p, err = a.profileService.UpdateLocation(ctx, form)
	}
	if err != nil {
		return a.report(ctx, err)
	}

	fmt.Fprintf(a.out, "Location saved: %s, %s, %s (%s)\n", p.City, p.State, p.Country, p.LivingType.Label())
	return nil
}
