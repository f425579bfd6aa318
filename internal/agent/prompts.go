package agent

// decidePrompt asks for a binary classification of whether the question
// needs document retrieval. The reply is matched for the token SEARCH.
const decidePrompt = `You are deciding whether a user question requires searching a document collection, or can be answered directly from general knowledge and the conversation so far.

Here is the question:
%s

Reply with a single word: SEARCH if document retrieval is needed, or ANSWER if the question can be answered directly.`

// gradePrompt asks for a relevance score of retrieved context against a
// question, emitted as structured output.
const gradePrompt = `You are a grader assessing relevance of a retrieved document to a user question.
Here is the retrieved document:

%s

Here is the user question: %s

If the document contains keyword(s) or semantic meaning related to the user question, grade it as relevant.
Give a score from 0 to 1 to indicate the relevance of the document to the question.`

// rewritePrompt asks for a reformulated question that captures the
// underlying semantic intent.
const rewritePrompt = `Look at the input and try to reason about the underlying semantic intent / meaning.
Here is the initial question:
-------
%s
-------
Formulate an improved question:`

// groundedAnswerPrompt frames the terminal answer generation for the
// retrieval-augmented path.
const groundedAnswerPrompt = `You are an assistant for question-answering tasks. Use the retrieved context below to answer the question. Answer in at most three sentences, and cite the source document and its page/line for the facts you use. If the context does not contain the answer, say "I don't know".

%s

Question: %s`

// noDocumentsInstruction is appended to the working history when retrieval
// returns nothing, so the answer acknowledges the miss and falls back to
// general knowledge.
const noDocumentsInstruction = `No documents in the collection matched the question. Acknowledge that no supporting documents were found, then answer from general knowledge.`

// exhaustedPrompt frames the best-effort answer after the iteration
// ceiling is reached.
const exhaustedPrompt = `You were unable to gather complete information from the document collection for this question. Acknowledge that the information gathering was incomplete, then give your best-effort answer.

Question: %s`
