package entity

import "encoding/json"

// copyRef returns a fresh pointer holding *p, or nil
func copyRef[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return Ref(*p)
}

// The Clone methods return a deep copy: optional fields and raw JSON get their
// own memory, so the copy can be handed out or stored independently.

func (u User) Clone() User {
	u.AgencyID = copyRef(u.AgencyID)
	u.CorporateID = copyRef(u.CorporateID)
	return u
}

func (a Agency) Clone() Agency { return a }

func (c Corporate) Clone() Corporate { return c }

func (p Park) Clone() Park {
	p.Coordinates = copyRef(p.Coordinates)
	return p
}

func (v Vehicle) Clone() Vehicle {
	v.CorporateID = copyRef(v.CorporateID)
	v.DriverID = copyRef(v.DriverID)
	v.CurrentParkID = copyRef(v.CurrentParkID)
	v.CurrentLocation = copyRef(v.CurrentLocation)
	v.DestinationParkID = copyRef(v.DestinationParkID)
	v.ExpectedArrival = copyRef(v.ExpectedArrival)
	v.CurrentRoute = copyRef(v.CurrentRoute)
	return v
}

func (d Driver) Clone() Driver {
	d.CorporateID = copyRef(d.CorporateID)
	return d
}

func (m Manifest) Clone() Manifest {
	m.CargoWeight = copyRef(m.CargoWeight)
	return m
}

func (p Passenger) Clone() Passenger {
	p.Age = copyRef(p.Age)
	p.ContactPhone = copyRef(p.ContactPhone)
	p.EmergencyContact = copyRef(p.EmergencyContact)
	if p.Luggage != nil {
		p.Luggage = append(json.RawMessage{}, p.Luggage...)
	}
	return p
}

func (p Parcel) Clone() Parcel { return p }

func (r TrafficReport) Clone() TrafficReport {
	r.PredictedTrend = copyRef(r.PredictedTrend)
	return r
}

func (a SecurityAlert) Clone() SecurityAlert {
	a.VehicleID = copyRef(a.VehicleID)
	a.Location = copyRef(a.Location)
	a.AgencyID = copyRef(a.AgencyID)
	return a
}

func (v Violation) Clone() Violation {
	v.DriverID = copyRef(v.DriverID)
	v.Location = copyRef(v.Location)
	return v
}
