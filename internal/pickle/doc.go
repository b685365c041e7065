// Package pickle turns media items into URL-safe strings and back.
//
// A pickle is the base64 form of the item's JSON with the characters that
// would break a plugin query replaced: '=' becomes %3d, '/' becomes %2f,
// '+' becomes %2b and line breaks become '-'. Values are therefore safe to
// place in a query string without further escaping.
//
// A pickle may instead be a store reference of the form
// "<storeGUID>--<itemGUID>". Those are resolved through a Store, which keeps
// gzip-compressed listings on disk so that large folders do not have to
// travel inside URLs.
package pickle
