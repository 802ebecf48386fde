// Copyright (c) 2026 Voterinfo Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package importer loads candidate CSV files into the candidates table.

The expected header matches the table's columns:

	id,candidate_type,locator,name,party,orderno,ward_code,ward_name,...

candidate_type and locator are required per record; a missing id is
replaced with a generated UUID. The whole file is imported in a single
transaction.

Invoked from main via the -import flag (or IMPORT_FILE) before the
server starts listening.
*/
package importer
