/*
Package errors implements custom error interfaces for the engine.

Error declarations should be generic and cover broad range of cases.
Each returned error instance can wrap a generic error declaration to
provide more details. Business logic packages register their own root
errors with codes above 1000.
*/
package errors
