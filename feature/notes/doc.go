// Package notes implements the notes resource with bulk mutation support.
//
// A note is a small persisted record ({id, contents, number}); the package
// exists to exercise the core/bulk layer end to end: bulk create, bulk
// update with identifier reconciliation, and bulk destroy guarded by the
// filter-safety predicate.
//
// # Components
//
//   - Schema: payload decoding and field validation by mode.
//   - Service: sequences validation, target resolution, and writes inside
//     the optional transaction scope.
//   - Handler: exposes the HTTP surface and translates batch errors.
//   - Loader: registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET    /notes : list, with filter/order query parameters.
//   - POST   /notes : create one (object) or many (array), 201.
//   - PUT    /notes : bulk update by identifier, 200 in request order.
//   - PATCH  /notes : partial bulk update, 200 in request order.
//   - DELETE /notes : bulk destroy of the filtered collection, 204,
//     or 400 when no real filtering was applied.
package notes
