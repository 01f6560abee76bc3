package main

import "github.com/frahmantamala/reimbursement-workflow/cmd"

func main() {
	cmd.Execute()
}
