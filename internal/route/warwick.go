package route

import "climb-routes/pkg/geometry"

// warwickRoute is the static route on the 2016 MoonBoard at Warwick, used for
// grades with too few generated routes.
var warwickRoute = [...]geometry.NormalizedPoint{
	{X: 0.21353383458646616, Y: 0.844574780058651},
	{X: 0.29172932330827067, Y: 0.793743890518084},
	{X: 0.29172932330827067, Y: 0.6412512218963832},
	{X: 0.5263157894736842, Y: 0.5395894428152492},
	{X: 0.3699248120300752, Y: 0.4887585532746823},
	{X: 0.7609022556390977, Y: 0.3362658846529814},
	{X: 0.6045112781954888, Y: 0.13294232649071358},
}

// StaticRoute returns a fresh copy of the static Warwick route.
func StaticRoute() geometry.Route {
	r := make(geometry.Route, len(warwickRoute))
	copy(r, warwickRoute[:])
	return r
}
