/*
Package operation drives a name replacement run.

	+-------------+      +-------------+      +-------------+
	|  Acquirer   | ---> |   Engine    |      | Transaction |
	| (Prompting) | <--- | (Warnings)  |      |  (Commit)   |
	+------+------+      +-------------+      +------+------+
	       |                                         ^
	       +----------------- Runner ----------------+

🎯 Purpose:
- Collects the file path and the four names from the operator
- Refuses values with blocking warnings and asks for confirmation of
  advisory ones
- Hands the finished request to the transaction manager

🔄 Flow:
1. Prompting: the current field is requested and stored
2. Validating: warnings for that field are evaluated
3. Confirming: each advisory warning is confirmed in order
4. Advancing: the next field is prompted, or the run is done

A blocking warning or a declined confirmation sends the field back to
Prompting. There is no way to skip a field.

🔍 Example:

	acq := operation.NewAcquirer(console, engine)
	runner := operation.NewRunner(&logger)
	err := runner.Run(ctx,
		operation.NewAcquireOperation(acq, req),
		operation.NewCommitOperation(mgr, req, nil),
	)
*/
package operation
